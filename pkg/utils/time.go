package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ParseUserTime parses a time string that can be RFC3339, YYYY-MM-DD or epoch milliseconds.
// For YYYY-MM-DD format, if isEndTime is true, it will set the time to end of day (23:59:59.999).
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	// Try RFC3339 first
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	if ms, err := strconv.ParseInt(timeStr, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}

	// Try simple date format
	t, err = time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339, YYYY-MM-DD or epoch milliseconds, got %s", timeStr)
	}

	// For end_time with date only, set it to end of day
	if isEndTime {
		t = t.Add(24*time.Hour - time.Millisecond)
	}

	return t, nil
}

// ParseUserMillis is ParseUserTime returning epoch milliseconds.
func ParseUserMillis(timeStr string, isEndTime bool) (int64, error) {
	t, err := ParseUserTime(timeStr, isEndTime)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// NowMillis returns the current time in epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
