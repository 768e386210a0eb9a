package calendar

import (
	"time"

	"github.com/lululau/minical/internal/holidays"
)

// Membership classifies a cell relative to the displayed month.
type Membership int

const (
	Previous Membership = iota
	Current
	Next
)

func (m Membership) String() string {
	switch m {
	case Previous:
		return "previous"
	case Current:
		return "current"
	case Next:
		return "next"
	}
	return "unknown"
}

// Cell is one slot of the month grid.
type Cell struct {
	Day        int
	Membership Membership
	Selected   bool

	// Annotations filled in by Service; MonthGrid leaves them empty.
	IsToday bool
	Label   string
	Holiday *holidays.HolidayInfo
}

// InMonth reports whether the cell belongs to the displayed month.
func (c Cell) InMonth() bool {
	return c.Membership == Current
}

// Classes returns the styling hooks for the cell: "day" always, "selected"
// for the selected day, and "filler" plus "prev" or "next" for cells that
// pad the grid with neighbouring months.
func (c Cell) Classes() []string {
	classes := []string{"day"}
	if c.Selected {
		classes = append(classes, "selected")
	}
	switch c.Membership {
	case Previous:
		classes = append(classes, "filler", "prev")
	case Next:
		classes = append(classes, "filler", "next")
	}
	return classes
}

// DaysInMonth returns the number of days in month, taken from day 0 of the
// following month. Months outside 1..12 roll over into adjacent years.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of month.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// MonthGrid lays out month as Sunday-first weeks in row-major order.
//
// Leading cells carry the last days of the previous month. Trailing cells
// are numbered 1..n to complete the final week; they do not consult the
// next month's calendar. A current-month cell is selected only when
// selection falls in the displayed year and month.
func MonthGrid(year int, month time.Month, selection Date) []Cell {
	days := DaysInMonth(year, month)
	first := int(FirstWeekday(year, month))
	prevDays := DaysInMonth(year, month-1)

	total := first + days
	trailing := (7 - total%7) % 7

	// Normalize so selection comparisons work for overflowing months.
	shown := NewDate(year, month, 1)
	selectable := selection.SameMonth(shown)

	cells := make([]Cell, 0, total+trailing)
	for i := 0; i < first; i++ {
		cells = append(cells, Cell{
			Day:        prevDays - first + i + 1,
			Membership: Previous,
		})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{
			Day:        d,
			Membership: Current,
			Selected:   selectable && d == selection.Day,
		})
	}
	for i := 0; i < trailing; i++ {
		cells = append(cells, Cell{
			Day:        i + 1,
			Membership: Next,
		})
	}
	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	weeks := make([][]Cell, 0, (len(cells)+6)/7)
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		weeks = append(weeks, cells[start:end])
	}
	return weeks
}
