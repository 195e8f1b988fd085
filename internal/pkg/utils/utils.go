package utils

import (
	"fmt"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// SplitAndTrim splits s on sep and trims every part.
// Example: " a, b ,c" -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// NonEmpty drops empty strings keeping order.
func NonEmpty(values []string) []string {
	results := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			results = append(results, v)
		}
	}

	return results
}
