package domain

// Ruleset partitions achievement definitions into the current ruleset and the
// deprecated one. Every definition belongs to exactly one ruleset.
type Ruleset int

const (
	RulesetCurrent Ruleset = iota
	RulesetLegacy
)

func (r Ruleset) String() string {
	if r == RulesetLegacy {
		return "legacy"
	}
	return "current"
}

// Includes reports whether a definition with the given legacy flag belongs to
// this ruleset.
func (r Ruleset) Includes(legacy bool) bool {
	return legacy == (r == RulesetLegacy)
}

type OneTimeAchievement struct {
	// ID is the definition key within its mode, e.g. "BUILDER"
	ID          string
	Name        string
	Description string
	Points      int
	Legacy      bool

	// Unlock rates are not present on all definitions
	GamePercentUnlocked   *float64
	GlobalPercentUnlocked *float64
}

type AchievementTier struct {
	// Amount is the progress threshold required to unlock this tier.
	// Tiers are ordered by ascending Amount.
	Amount int
	Points int
}

type TieredAchievement struct {
	ID          string
	Name        string
	Description string
	Tiers       []AchievementTier
	Legacy      bool
}

// ModeAchievements holds every achievement definition for a single mode.
type ModeAchievements struct {
	OneTime []OneTimeAchievement
	Tiered  []TieredAchievement

	// TotalPoints is the authoritative possible point total for the current
	// ruleset, as published by the resource API.
	TotalPoints int
}

// AchievementIndex maps mode keys to their achievement definitions.
type AchievementIndex map[string]ModeAchievements
