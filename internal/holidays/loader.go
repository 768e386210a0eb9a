// Package holidays reads the public-holiday JSON feed used to colour
// holidays and make-up workdays in the calendar.
package holidays

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// CacheMaxAge is how long a cached holiday file is considered current.
const CacheMaxAge = 6 * 30 * 24 * time.Hour

// Parse decodes holiday JSON into a year -> MM-DD -> entry lookup table.
func Parse(r io.Reader) (map[string]map[string]*HolidayEntry, error) {
	var holidayData HolidayData
	if err := json.NewDecoder(r).Decode(&holidayData); err != nil {
		return nil, fmt.Errorf("failed to parse holidays JSON: %w", err)
	}
	result := make(map[string]map[string]*HolidayEntry, len(holidayData))
	for _, yearData := range holidayData {
		result[yearData.Year] = yearData.Holiday
	}
	return result, nil
}

// LoadFromFile loads holiday data from a JSON file.
func LoadFromFile(path string) (map[string]map[string]*HolidayEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// GetCachePath returns the location of the cached holiday file under the
// user cache directory.
func GetCachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "minical", "holidays.json"), nil
}

// LoadFromCache loads holiday data from the user cache directory.
func LoadFromCache() (map[string]map[string]*HolidayEntry, error) {
	cachePath, err := GetCachePath()
	if err != nil {
		return nil, err
	}
	return LoadFromFile(cachePath)
}

// IsCacheValid reports whether cachePath exists and is younger than
// CacheMaxAge relative to now.
func IsCacheValid(cachePath string, now time.Time) (bool, error) {
	info, err := os.Stat(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.ModTime().After(now.Add(-CacheMaxAge)), nil
}

// GetHolidayForDate returns the annotation for a date, or nil.
func GetHolidayForDate(data map[string]map[string]*HolidayEntry, year int, month int, day int) *HolidayInfo {
	if data == nil {
		return nil
	}
	yearData, ok := data[strconv.Itoa(year)]
	if !ok {
		return nil
	}
	entry, ok := yearData[fmt.Sprintf("%02d-%02d", month, day)]
	if !ok || entry == nil {
		return nil
	}
	return &HolidayInfo{
		IsHoliday: entry.Holiday,
		Name:      entry.Name,
	}
}
