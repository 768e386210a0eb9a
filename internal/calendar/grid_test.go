package calendar

import (
	"slices"
	"testing"
	"time"
)

func TestMonthGridMay2024(t *testing.T) {
	cells := MonthGrid(2024, time.May, Date{})
	if len(cells) != 35 {
		t.Fatalf("expected 35 cells, got %d", len(cells))
	}

	var prev, cur, next []int
	for _, c := range cells {
		switch c.Membership {
		case Previous:
			prev = append(prev, c.Day)
		case Current:
			cur = append(cur, c.Day)
		case Next:
			next = append(next, c.Day)
		}
	}
	if want := []int{28, 29, 30}; !slices.Equal(prev, want) {
		t.Fatalf("previous cells = %v, want %v", prev, want)
	}
	if len(cur) != 31 || cur[0] != 1 || cur[30] != 31 {
		t.Fatalf("unexpected current cells %v", cur)
	}
	if want := []int{1}; !slices.Equal(next, want) {
		t.Fatalf("next cells = %v, want %v", next, want)
	}
}

func TestMonthGridProperties(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := MonthGrid(year, month, Date{})
			days := DaysInMonth(year, month)
			first := int(FirstWeekday(year, month))

			if len(cells) == 0 || len(cells)%7 != 0 || len(cells) < days {
				t.Fatalf("%d-%02d: bad cell count %d", year, month, len(cells))
			}
			for i := 0; i < first; i++ {
				if cells[i].Membership != Previous {
					t.Fatalf("%d-%02d: cell %d should be previous", year, month, i)
				}
			}
			for d := 1; d <= days; d++ {
				c := cells[first+d-1]
				if c.Membership != Current || c.Day != d {
					t.Fatalf("%d-%02d: cell %d = %+v, want current day %d", year, month, first+d-1, c, d)
				}
			}
			for i, c := range cells[first+days:] {
				if c.Membership != Next || c.Day != i+1 {
					t.Fatalf("%d-%02d: trailing cell %d = %+v", year, month, i, c)
				}
			}
			if len(cells)-first-days > 6 {
				t.Fatalf("%d-%02d: trailing filler spans a whole week", year, month)
			}
		}
	}
}

func TestMonthGridYearRollover(t *testing.T) {
	// January 2025 starts on a Wednesday; the filler comes from December 2024.
	cells := MonthGrid(2025, time.January, Date{})
	want := []int{29, 30, 31}
	for i, d := range want {
		if cells[i].Membership != Previous || cells[i].Day != d {
			t.Fatalf("cell %d = %+v, want previous %d", i, cells[i], d)
		}
	}
	if DaysInMonth(2025, 0) != 31 {
		t.Fatalf("month 0 should roll to December")
	}
	if DaysInMonth(2024, 13) != 31 {
		t.Fatalf("month 13 should roll to January")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthGridSelection(t *testing.T) {
	selection := Date{Year: 2024, Month: time.May, Day: 15}

	var selected []Cell
	for _, c := range MonthGrid(2024, time.May, selection) {
		if c.Selected {
			selected = append(selected, c)
		}
	}
	if len(selected) != 1 || selected[0].Day != 15 || selected[0].Membership != Current {
		t.Fatalf("expected exactly day 15 selected, got %+v", selected)
	}

	for _, c := range MonthGrid(2024, time.June, selection) {
		if c.Selected {
			t.Fatalf("no cell should be selected in another month, got %+v", c)
		}
	}
	for _, c := range MonthGrid(2023, time.May, selection) {
		if c.Selected {
			t.Fatalf("no cell should be selected in another year, got %+v", c)
		}
	}
}

func TestCellClasses(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want []string
	}{
		{"current", Cell{Day: 3, Membership: Current}, []string{"day"}},
		{"selected", Cell{Day: 3, Membership: Current, Selected: true}, []string{"day", "selected"}},
		{"previous", Cell{Day: 30, Membership: Previous}, []string{"day", "filler", "prev"}},
		{"next", Cell{Day: 1, Membership: Next}, []string{"day", "filler", "next"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Classes(); !slices.Equal(got, tt.want) {
				t.Fatalf("Classes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeeks(t *testing.T) {
	weeks := Weeks(MonthGrid(2024, time.May, Date{}))
	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}
	if weeks[0][3].Day != 1 || weeks[0][3].Membership != Current {
		t.Fatalf("May 1 2024 should be the first Wednesday, got %+v", weeks[0][3])
	}
}

func TestDateHelpers(t *testing.T) {
	d := Date{Year: 2024, Month: time.January, Day: 31}
	if got := d.FirstOfMonth(); got != (Date{2024, time.January, 1}) {
		t.Fatalf("FirstOfMonth() = %v", got)
	}
	if got := d.AddMonths(-1); got != (Date{2023, time.December, 1}) {
		t.Fatalf("AddMonths(-1) = %v", got)
	}
	if got := d.AddMonths(1); got != (Date{2024, time.February, 1}) {
		t.Fatalf("AddMonths(1) = %v", got)
	}
	if got := d.AddMonths(13); got != (Date{2025, time.February, 1}) {
		t.Fatalf("AddMonths(13) = %v", got)
	}
	if got := NewDate(2024, time.February, 30); got != (Date{2024, time.March, 1}) {
		t.Fatalf("NewDate overflow = %v", got)
	}
	if d.String() != "2024-01-31" {
		t.Fatalf("String() = %q", d.String())
	}

	parsed, err := ParseDate("2024-05-04")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if parsed != (Date{2024, time.May, 4}) {
		t.Fatalf("ParseDate = %v", parsed)
	}
	if _, err := ParseDate("2024/05/04"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestTitle(t *testing.T) {
	if got := Title(2024, time.May); got != "2024年五月" {
		t.Fatalf("Title = %q", got)
	}
	if got := Title(2024, 0); got != "2023年十二月" {
		t.Fatalf("Title rollover = %q", got)
	}
}
