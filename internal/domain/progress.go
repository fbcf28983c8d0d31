package domain

import "strings"

// PlayerProgress holds the player's raw progress counters as extracted from
// the Hypixel player payload. It is immutable for the lifetime of a dashboard
// session; all aggregates are recomputed from it on demand.
type PlayerProgress struct {
	UUID string

	// Compound "mode_name" keys (lower-cased) of unlocked one time achievements
	OneTimeUnlocked map[string]struct{}

	// Compound "mode_name" keys (lower-cased) -> recorded progress value
	TieredProgress map[string]int

	// Quest id -> number of completions
	QuestCompletions map[string]int

	// Challenge id -> all time completions
	ChallengeCompletions map[string]int
}

// AchievementKey builds the compound key used by the player payload to
// reference an achievement definition.
func AchievementKey(mode, name string) string {
	return mode + "_" + strings.ToLower(name)
}

func (p PlayerProgress) HasOneTime(mode, name string) bool {
	_, ok := p.OneTimeUnlocked[AchievementKey(mode, name)]
	return ok
}

// TieredValue returns the player's recorded progress for a tiered achievement.
// The second return value reports whether any progress is recorded at all.
func (p PlayerProgress) TieredValue(mode, name string) (int, bool) {
	value, ok := p.TieredProgress[AchievementKey(mode, name)]
	return value, ok
}
