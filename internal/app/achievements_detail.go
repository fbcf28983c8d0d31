package app

import (
	"fmt"
	"strings"

	"github.com/shmeado/lantern/internal/domain"
)

// OneTimeItem is a single one time achievement row in the mode detail view.
type OneTimeItem struct {
	Name        string
	Description string
	Points      int
	Unlocked    bool
	Color       string

	// Two decimal unlock rates, "N/A" when the definition has none
	GamePercentUnlocked   string
	GlobalPercentUnlocked string
}

// TierLine is one line of a tiered achievement's tier breakdown.
type TierLine struct {
	Text  string
	Color string
}

// TieredItem is a single tiered achievement row in the mode detail view.
type TieredItem struct {
	Name        string
	Description string

	Tiers           []domain.AchievementTier
	CurrentTier     int
	CurrentProgress int

	Color string
	// Label like "3/5" showing unlocked tiers out of total
	TierLabel string

	Lines []TierLine
}

// ModeAchievementDetail is the full detail view for one selected mode: its
// totals plus both definition lists under the active ruleset.
type ModeAchievementDetail struct {
	Mode  string
	Title string

	Totals ModeAchievementTotals

	// Truncated percentages of unlocked/possible and points/possible points
	UnlockedPercent int
	PointsPercent   int

	OneTime []OneTimeItem
	Tiered  []TieredItem
}

func percentRate(rate *float64) string {
	if rate == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *rate)
}

func oneTimeItem(mode string, def domain.OneTimeAchievement, progress *domain.PlayerProgress) OneTimeItem {
	unlocked := progress.HasOneTime(mode, def.ID)

	color := "red"
	if unlocked {
		color = "darkGreen"
	}

	return OneTimeItem{
		Name:        def.Name,
		Description: def.Description,
		Points:      def.Points,
		Unlocked:    unlocked,
		Color:       color,

		GamePercentUnlocked:   percentRate(def.GamePercentUnlocked),
		GlobalPercentUnlocked: percentRate(def.GlobalPercentUnlocked),
	}
}

func tieredItem(mode string, def domain.TieredAchievement, progress *domain.PlayerProgress) TieredItem {
	currentTier := 0
	value, hasProgress := progress.TieredValue(mode, def.ID)
	if hasProgress {
		for _, tier := range def.Tiers {
			if value >= tier.Amount {
				currentTier++
			}
		}
	}

	color := "red"
	if currentTier == len(def.Tiers) {
		color = "darkGreen"
	} else if currentTier > 0 {
		color = "orange"
	}

	lines := make([]TierLine, 0, len(def.Tiers))
	for i, tier := range def.Tiers {
		text := fmt.Sprintf("%d. %s", i+1, strings.ReplaceAll(def.Description, "%%value%%", fmt.Sprintf("%d", tier.Amount)))

		var lineColor string
		switch {
		case currentTier >= i+1:
			lineColor = "darkGreen"
		case currentTier == i:
			// The tier currently in progress gets a progress annotation
			lineColor = "orange"
			text += fmt.Sprintf(" (%d/%d • %.0f%%)", value, tier.Amount, float64(value)/float64(tier.Amount)*100)
		default:
			lineColor = "red"
		}

		lines = append(lines, TierLine{Text: text, Color: lineColor})
	}

	return TieredItem{
		Name:        def.Name,
		Description: def.Description,

		Tiers:           def.Tiers,
		CurrentTier:     currentTier,
		CurrentProgress: value,

		Color:     color,
		TierLabel: fmt.Sprintf("%d/%d", currentTier, len(def.Tiers)),

		Lines: lines,
	}
}

// ModeAchievementDetailFor computes the detail view for one mode under the
// given ruleset. Both the one time and tiered lists are produced on every
// call; the view decides which is visible.
func ModeAchievementDetailFor(
	index domain.AchievementIndex,
	games domain.GameInfoTable,
	progress *domain.PlayerProgress,
	ruleset domain.Ruleset,
	mode string,
) ModeAchievementDetail {
	defs := index[mode]
	totals := modeTotals(mode, defs, progress, ruleset)

	detail := ModeAchievementDetail{
		Mode:  mode,
		Title: games.NameByDatabaseName(mode),

		Totals: totals,
	}

	if totals.Possible > 0 {
		detail.UnlockedPercent = int(float64(totals.Unlocked) / float64(totals.Possible) * 100)
	}
	if totals.PossiblePoints > 0 {
		detail.PointsPercent = int(float64(totals.Points) / float64(totals.PossiblePoints) * 100)
	}

	for _, def := range defs.OneTime {
		if !ruleset.Includes(def.Legacy) {
			continue
		}
		detail.OneTime = append(detail.OneTime, oneTimeItem(mode, def, progress))
	}

	for _, def := range defs.Tiered {
		if !ruleset.Includes(def.Legacy) {
			continue
		}
		detail.Tiered = append(detail.Tiered, tieredItem(mode, def, progress))
	}

	return detail
}
