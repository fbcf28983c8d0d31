package domain_test

import (
	"testing"
	"time"

	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		suffix   string
		expected string
	}{
		{"zero", 0, "", "0s"},
		{"zero with suffix", 0, " ago", "Just now"},
		{"sub second with suffix", 500 * time.Millisecond, " ago", "Just now"},
		{"seconds", 42 * time.Second, "", "42s"},
		{"minutes and seconds", 12*time.Minute + 30*time.Second, "", "12m 30s"},
		{"hours and minutes", 3*time.Hour + 5*time.Minute, "", "3h 5m"},
		{"days and hours", 25 * time.Hour, "", "1d 1h"},
		// Only the two largest units are shown
		{"truncated to two units", 24*time.Hour + 61*time.Second, "", "1d 1m"},
		{"with suffix", 90 * time.Second, " ago", "1m 30s ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.FormatDuration(tt.duration, tt.suffix))
		})
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"GRAY", "gray"},
		{"DARK_AQUA", "darkAqua"},
		{"dark_green", "darkGreen"},
		{"LIGHT_PURPLE", "lightPurple"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.SnakeToCamel(tt.in))
		})
	}
}

func TestAchievementKey(t *testing.T) {
	require.Equal(t, "bedwars_builder", domain.AchievementKey("bedwars", "BUILDER"))
	require.Equal(t, "skywars_kits_1", domain.AchievementKey("skywars", "KITS_1"))
}

func TestRulesetIncludes(t *testing.T) {
	require.True(t, domain.RulesetCurrent.Includes(false))
	require.False(t, domain.RulesetCurrent.Includes(true))
	require.True(t, domain.RulesetLegacy.Includes(true))
	require.False(t, domain.RulesetLegacy.Includes(false))
}
