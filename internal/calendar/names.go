package calendar

import (
	"fmt"
	"time"
)

var monthNames = [12]string{
	"一月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

// WeekdayNames are the Sunday-first column headers.
var WeekdayNames = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// MonthName returns the display name for month, rolling out-of-range values.
func MonthName(month time.Month) string {
	idx := (int(month) - 1) % 12
	if idx < 0 {
		idx += 12
	}
	return monthNames[idx]
}

// Title is the header label for a month, e.g. "2024年五月".
func Title(year int, month time.Month) string {
	d := NewDate(year, month, 1)
	return fmt.Sprintf("%d年%s", d.Year, MonthName(d.Month))
}
