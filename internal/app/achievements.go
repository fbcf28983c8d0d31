package app

import (
	"fmt"
	"math"
	"sort"

	"github.com/shmeado/lantern/internal/domain"
)

// ModeAchievementTotals is the per-mode summary computed under a single
// ruleset. Unlocked counts unlocked one time achievements plus unlocked
// tiers of tiered achievements.
type ModeAchievementTotals struct {
	Mode string
	// Display name of the mode, falling back to the raw key
	Title string

	Unlocked int
	Possible int

	Points         int
	PossiblePoints int

	// Rounded percentage of possible points earned, or -1 when the mode has
	// no possible points
	Percentage int

	Color string
	// Empty when Percentage is the sentinel
	PercentageLabel string
}

// AchievementOverview is the ruleset-wide view-model: every mode with at
// least one includable achievement, ranked by descending point percentage,
// plus the totals across all of them.
type AchievementOverview struct {
	Ruleset domain.Ruleset

	Modes []ModeAchievementTotals

	TotalUnlocked       int
	TotalPossible       int
	TotalPoints         int
	TotalPossiblePoints int

	// Two decimal global point percentage, e.g. "72.41%"
	GlobalPercentage string
}

func colorForPercentage(percentage int) string {
	switch {
	case percentage == 100:
		return "darkGreen"
	case percentage == 0:
		return "red"
	default:
		return "orange"
	}
}

func modeTotals(mode string, defs domain.ModeAchievements, progress *domain.PlayerProgress, ruleset domain.Ruleset) ModeAchievementTotals {
	totals := ModeAchievementTotals{Mode: mode}

	for _, def := range defs.OneTime {
		if !ruleset.Includes(def.Legacy) {
			continue
		}
		totals.Possible++
		totals.PossiblePoints += def.Points
		if progress.HasOneTime(mode, def.ID) {
			totals.Unlocked++
			totals.Points += def.Points
		}
	}

	for _, def := range defs.Tiered {
		if !ruleset.Includes(def.Legacy) {
			continue
		}
		totals.Possible += len(def.Tiers)
		for _, tier := range def.Tiers {
			totals.PossiblePoints += tier.Points
		}

		value, hasProgress := progress.TieredValue(mode, def.ID)
		if !hasProgress {
			continue
		}
		for _, tier := range def.Tiers {
			if value >= tier.Amount {
				totals.Unlocked++
				totals.Points += tier.Points
			}
		}
	}

	// The resource total is authoritative for the current ruleset; no such
	// total exists for legacy, so the locally summed value stands.
	if ruleset == domain.RulesetCurrent {
		totals.PossiblePoints = defs.TotalPoints
	}

	if totals.PossiblePoints > 0 {
		totals.Percentage = int(math.Round(float64(totals.Points) / float64(totals.PossiblePoints) * 100))
		totals.PercentageLabel = fmt.Sprintf("%d%%", totals.Percentage)
	} else {
		totals.Percentage = -1
	}
	totals.Color = colorForPercentage(totals.Percentage)

	return totals
}

// AggregateAchievements computes the achievement overview for one ruleset.
// Pure function of its inputs; recomputed on every ruleset switch.
func AggregateAchievements(
	index domain.AchievementIndex,
	games domain.GameInfoTable,
	progress *domain.PlayerProgress,
	ruleset domain.Ruleset,
) AchievementOverview {
	overview := AchievementOverview{Ruleset: ruleset}

	// Deterministic input order so the ranking below is reproducible
	modes := make([]string, 0, len(index))
	for mode := range index {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		totals := modeTotals(mode, index[mode], progress, ruleset)
		// Modes with nothing to unlock under this ruleset are not shown
		if totals.Possible == 0 {
			continue
		}
		totals.Title = games.NameByDatabaseName(mode)

		overview.Modes = append(overview.Modes, totals)

		overview.TotalUnlocked += totals.Unlocked
		overview.TotalPossible += totals.Possible
		overview.TotalPoints += totals.Points
		overview.TotalPossiblePoints += totals.PossiblePoints
	}

	// Descending point percentage; stable so equal modes keep input order
	sort.SliceStable(overview.Modes, func(i, j int) bool {
		return overview.Modes[i].Percentage > overview.Modes[j].Percentage
	})

	if overview.TotalPossiblePoints > 0 {
		overview.GlobalPercentage = fmt.Sprintf(
			"%.2f%%",
			float64(overview.TotalPoints)/float64(overview.TotalPossiblePoints)*100,
		)
	}

	return overview
}
