package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/dayface/internal/constants"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// NowMinutes returns the current minute of the day in the specified timezone.
func NowMinutes(timezone string) (int, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return 0, err
	}
	return now.Hour()*constants.MinutesPerHour + now.Minute(), nil
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*constants.MinutesPerHour + t.Minute(), nil
}

// ParseEndTimeToMinutes parses the exclusive end of an interval. Midnight
// ("00:00" or "24:00") is the end of the day, 1440.
func ParseEndTimeToMinutes(timeStr string) (int, error) {
	if timeStr == "24:00" {
		return constants.MinutesPerDay, nil
	}
	m, err := ParseTimeToMinutes(timeStr)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return constants.MinutesPerDay, nil
	}
	return m, nil
}

// MinutesToTime formats minutes from midnight as zero-padded 24-hour HH:MM.
// 1440 wraps to "00:00".
func MinutesToTime(minutes int) string {
	hours := (minutes / constants.MinutesPerHour) % 24
	mins := minutes % constants.MinutesPerHour
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// ParseDate parses a date string (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
