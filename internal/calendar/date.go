package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a date string could not be parsed.
var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

const dateLayout = "2006-01-02"

// Date is a Gregorian year/month/day triple with no time or zone attached.
// Values are compared with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, rolling overflowing months and days the same way
// time.Date does: month 0 is December of the previous year, day 0 is the
// last day of the previous month.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// FromTime drops the clock portion of t.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return FromTime(t), nil
}

// Time returns local midnight of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// SameMonth reports whether d and other fall in the same year and month.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// AddMonths returns day 1 of the month n months away from d. The day is
// reset before the month moves so that the 31st never spills over.
func (d Date) AddMonths(n int) Date {
	first := d.FirstOfMonth()
	return NewDate(first.Year, first.Month+time.Month(n), first.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}
