package holidays

import (
	"encoding/json"
)

// HolidayEntry is one MM-DD record of the holiday JSON feed.
type HolidayEntry struct {
	Holiday bool   `json:"holiday"`
	Name    string `json:"name"`
	Wage    int    `json:"wage"`
	Date    string `json:"date"`
	// Optional fields
	After  *bool  `json:"after,omitempty"`
	Target string `json:"target,omitempty"`
	Rest   *int   `json:"rest,omitempty"`
}

// UnmarshalJSON accepts "holiday" as either a boolean or a string; a
// non-empty string counts as a holiday.
func (h *HolidayEntry) UnmarshalJSON(data []byte) error {
	type alias HolidayEntry
	aux := &struct {
		Holiday any `json:"holiday"`
		*alias
	}{
		alias: (*alias)(h),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.Holiday.(type) {
	case bool:
		h.Holiday = v
	case string:
		h.Holiday = v != ""
	default:
		h.Holiday = false
	}
	return nil
}

// HolidayData is the on-disk layout: a list of years, each mapping MM-DD
// keys to entries.
type HolidayData []struct {
	Year    string                   `json:"year"`
	Holiday map[string]*HolidayEntry `json:"holiday"`
}

// HolidayInfo is the per-day annotation attached to calendar cells.
type HolidayInfo struct {
	IsHoliday bool // false marks a make-up workday
	Name      string
}
