package grid

import (
	"strconv"
	"strings"
	"time"
)

// DayName returns the lowercase English weekday of t, the key of WorkingHours.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// IsWorkingHour reports whether the resource takes bookings during the given hour.
//
// A resource without a schedule is always available. A missing or disabled day
// is fully unavailable. Otherwise only the hour part of "HH:MM" counts, so a
// day starting at "09:30" opens the whole 09 row. Malformed entries are unavailable.
func IsWorkingHour(resource Resource, day string, hour int) bool {
	if resource.WorkingHours == nil {
		return true
	}

	schedule, ok := resource.WorkingHours[day]
	if !ok || !schedule.Enabled {
		return false
	}

	start, ok := parseHour(schedule.Start)
	if !ok {
		return false
	}

	end, ok := parseHour(schedule.End)
	if !ok {
		return false
	}

	return start <= hour && hour < end
}

// parseHour reads the hour of an "HH:MM" value. The hour takes one or two
// digits, the minutes exactly two in 00-59. "24:00" is the only value past 23.
func parseHour(value string) (int, bool) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || !isDigits(hourPart, 1, 2) || !isDigits(minutePart, 2, 2) {
		return 0, false
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, false
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute > 59 {
		return 0, false
	}

	if hour > 24 || (hour == 24 && minute != 0) {
		return 0, false
	}

	return hour, true
}

func isDigits(value string, minLen, maxLen int) bool {
	if len(value) < minLen || len(value) > maxLen {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
