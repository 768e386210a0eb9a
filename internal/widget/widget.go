// Package widget implements the month calendar widget: a reference date
// that drives the displayed grid, month navigation, day selection and a
// handle through which the host reads or replaces the date.
package widget

import (
	"time"

	"github.com/lululau/minical/internal/calendar"
)

// Handle is the imperative surface exposed to the host.
type Handle interface {
	GetDate() calendar.Date
	SetDate(calendar.Date)
}

// Mode reports who owns the reference date.
type Mode int

const (
	// Uncontrolled widgets own their reference date.
	Uncontrolled Mode = iota
	// Controlled widgets mirror an external value supplied by the host.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Widget holds the reference date of a month calendar.
type Widget struct {
	current  calendar.Date
	observed *calendar.Date
	onChange func(calendar.Date)
	now      func() time.Time
}

var _ Handle = (*Widget)(nil)

// Option configures a Widget.
type Option func(*Widget)

// WithValue sets the initial external value and puts the widget in
// controlled mode. Overflowing values roll over as in SetDate.
func WithValue(d calendar.Date) Option {
	return func(w *Widget) {
		v := normalize(d)
		w.observed = &v
	}
}

// WithOnChange registers the callback invoked when the user selects a day.
func WithOnChange(fn func(calendar.Date)) Option {
	return func(w *Widget) {
		w.onChange = fn
	}
}

// WithNow overrides the clock used for the default reference date.
func WithNow(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}

// New returns a widget whose reference date is the supplied value, or
// today when none is given.
func New(opts ...Option) *Widget {
	w := &Widget{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	if w.observed != nil {
		w.current = *w.observed
	} else {
		w.current = calendar.FromTime(w.now())
	}
	return w
}

// GetDate returns the live reference date.
func (w *Widget) GetDate() calendar.Date {
	return w.current
}

// SetDate replaces the reference date. The change callback is not invoked.
func (w *Widget) SetDate(d calendar.Date) {
	w.current = normalize(d)
}

func normalize(d calendar.Date) calendar.Date {
	return calendar.NewDate(d.Year, d.Month, d.Day)
}

// PreviousMonth moves to day 1 of the preceding month.
func (w *Widget) PreviousMonth() {
	w.current = w.current.AddMonths(-1)
}

// NextMonth moves to day 1 of the following month.
func (w *Widget) NextMonth() {
	w.current = w.current.AddMonths(1)
}

// PreviousYear moves to day 1 of the same month a year earlier.
func (w *Widget) PreviousYear() {
	w.current = w.current.AddMonths(-12)
}

// NextYear moves to day 1 of the same month a year later.
func (w *Widget) NextYear() {
	w.current = w.current.AddMonths(12)
}

// SelectDay activates day of the displayed month. It reports false, and
// does nothing, when day is not part of the month. The chosen date is
// passed to the change callback; uncontrolled widgets also adopt it as
// their reference date.
func (w *Widget) SelectDay(day int) (calendar.Date, bool) {
	if day < 1 || day > calendar.DaysInMonth(w.current.Year, w.current.Month) {
		return calendar.Date{}, false
	}
	picked := calendar.Date{Year: w.current.Year, Month: w.current.Month, Day: day}
	if w.Mode() == Uncontrolled {
		w.current = picked
	}
	if w.onChange != nil {
		w.onChange(picked)
	}
	return picked, true
}

// Observe reconciles the widget with the host's external value and must be
// called on every render. A nil value leaves the widget uncontrolled. A
// value that differs from the previously observed one replaces the
// reference date; an unchanged value leaves any navigation in place.
// Values are compared after rollover, so {2024, 13, 5} equals {2025, 1, 5}.
func (w *Widget) Observe(value *calendar.Date) {
	if value == nil {
		w.observed = nil
		return
	}
	v := normalize(*value)
	if w.observed != nil && *w.observed == v {
		return
	}
	w.observed = &v
	w.current = v
}

// Mode reports whether an external value currently drives the widget.
func (w *Widget) Mode() Mode {
	if w.observed != nil {
		return Controlled
	}
	return Uncontrolled
}

// Cells returns the grid for the displayed month with the reference day
// selected.
func (w *Widget) Cells() []calendar.Cell {
	return calendar.MonthGrid(w.current.Year, w.current.Month, w.current)
}

// View returns the annotated month view built by svc.
func (w *Widget) View(svc *calendar.Service) calendar.MonthView {
	return svc.Month(w.current.Year, w.current.Month, w.current)
}

// Title is the header label for the displayed month.
func (w *Widget) Title() string {
	return calendar.Title(w.current.Year, w.current.Month)
}
