package flight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// timestampLayouts are the ISO-8601 combined date/time forms accepted in the
// horario field. Layouts without offset are read as local wall-clock.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
}

// IsClockTime reports whether s is an H:MM or HH:MM wall-clock time.
func IsClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

// AddMinutes adds minutes to an HH:MM time, wrapping across midnight.
func AddMinutes(hhmm string, minutes int) (string, bool) {
	if !IsClockTime(hhmm) {
		return "", false
	}

	hours, mins, _ := strings.Cut(hhmm, ":")
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(mins)

	total := ((h*60+m+minutes)%minutesPerDay + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", total/60, total%60), true
}

// FormatClock formats t as zero padded HH:MM.
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// normalizeTimestamp turns an ISO-8601 date-time into HH:MM in loc. Values
// without the date/time separator or that fail to parse are returned as-is.
func normalizeTimestamp(value string, loc *time.Location) string {
	if !strings.Contains(value, "T") {
		return value
	}

	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return FormatClock(t.In(loc))
		}
	}

	return value
}

// parseFlightNumber reads the leading integer of s: optional leading spaces,
// an optional sign, then digits. "123A" is 123, "EK123" is not a number.
func parseFlightNumber(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}
