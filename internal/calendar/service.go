package calendar

import (
	"time"

	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"
	"github.com/lululau/minical/internal/holidays"
)

// Year range supported by the lunar calendar library. Days outside it are
// rendered without lunar labels.
const (
	MinLunarYear = 1900
	MaxLunarYear = 3000
)

// MonthView is an annotated month grid ready for rendering.
type MonthView struct {
	Year  int
	Month time.Month
	Title string
	Weeks [][]Cell
}

// Cells flattens the view back into grid order.
func (v MonthView) Cells() []Cell {
	cells := make([]Cell, 0, len(v.Weeks)*7)
	for _, week := range v.Weeks {
		cells = append(cells, week...)
	}
	return cells
}

// Service builds month views and decorates them with today, lunar and
// holiday information.
type Service struct {
	now         func() time.Time
	lunar       bool
	holidayData map[string]map[string]*holidays.HolidayEntry
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithHolidays sets the holiday data for the service.
func WithHolidays(data map[string]map[string]*holidays.HolidayEntry) Option {
	return func(s *Service) {
		s.holidayData = data
	}
}

// WithLunar enables lunar day labels.
func WithLunar(enabled bool) Option {
	return func(s *Service) {
		s.lunar = enabled
	}
}

// NewService constructs a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current date.
func (s *Service) Now() Date {
	return FromTime(s.now())
}

// HasHolidayData reports whether holiday annotations are available.
func (s *Service) HasHolidayData() bool {
	return len(s.holidayData) > 0
}

// Month builds the view for year/month with selection highlighted.
// Overflowing months are normalized rather than rejected.
func (s *Service) Month(year int, month time.Month, selection Date) MonthView {
	first := NewDate(year, month, 1)
	cells := MonthGrid(first.Year, first.Month, selection)
	today := s.Now()
	for i := range cells {
		if !cells[i].InMonth() {
			continue
		}
		s.annotate(&cells[i], Date{Year: first.Year, Month: first.Month, Day: cells[i].Day}, today)
	}
	return MonthView{
		Year:  first.Year,
		Month: first.Month,
		Title: Title(first.Year, first.Month),
		Weeks: Weeks(cells),
	}
}

// Year returns the views for all twelve months of year.
func (s *Service) Year(year int, selection Date) []MonthView {
	months := make([]MonthView, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, s.Month(year, m, selection))
	}
	return months
}

func (s *Service) annotate(cell *Cell, day Date, today Date) {
	cell.IsToday = day == today
	if s.lunar {
		cell.Label = lunarLabel(day)
	}
	if s.holidayData != nil {
		cell.Holiday = holidays.GetHolidayForDate(s.holidayData, day.Year, int(day.Month), day.Day)
	}
}

// lunarLabel selects the string rendered beneath the Gregorian date. Solar
// terms take precedence, followed by the lunar month name on the first day
// of a lunar month.
func lunarLabel(day Date) string {
	if day.Year < MinLunarYear || day.Year > MaxLunarYear {
		return ""
	}
	cal := calendarlib.BySolar(
		int64(day.Year),
		int64(day.Month),
		int64(day.Day),
		12, 0, 0,
	)
	t := day.Time()
	if term := cal.Solar.CurrentSolarterm; term != nil && term.IsInDay(&t) {
		return term.Alias()
	}
	dayAlias := cal.Lunar.DayAlias()
	if dayAlias == "初一" {
		if monthAlias := cal.Lunar.MonthAlias(); monthAlias != "" {
			return monthAlias
		}
	}
	return dayAlias
}
