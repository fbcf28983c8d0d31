package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatTimestamp renders a unix millisecond timestamp as DD/MM/YY HH:MM.
func FormatTimestamp(millis int64) string {
	return time.UnixMilli(millis).Format("02/01/06 15:04")
}

// FormatDuration renders a duration using its two largest non-zero units,
// e.g. "1d 4h" or "12m 30s". Sub-second durations render as "Just now" when
// a suffix is requested, "0s" otherwise.
func FormatDuration(d time.Duration, suffix string) string {
	units := []struct {
		label string
		size  time.Duration
	}{
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	remaining := d
	parts := []string{}

	for _, unit := range units {
		value := remaining / unit.size
		if value > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", value, unit.label))
			remaining -= value * unit.size
		}
		if len(parts) == 2 {
			break
		}
	}

	if len(parts) == 0 {
		if suffix != "" {
			return "Just now"
		}
		return "0s"
	}

	return strings.Join(parts, " ") + suffix
}

// SnakeToCamel converts SNAKE_CASE color keys from the API to the camelCase
// keys used by the view sink, e.g. "DARK_AQUA" -> "darkAqua".
func SnakeToCamel(s string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range strings.ToLower(s) {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
