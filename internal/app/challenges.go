package app

import (
	"sort"

	"github.com/shmeado/lantern/internal/domain"
)

// ChallengeModeTotal is one row of the mode list: a mode and the player's
// total completions across its challenges.
type ChallengeModeTotal struct {
	Mode        string
	Title       string
	Completions int
}

// ChallengeOverview ranks every mode by the player's total challenge
// completions.
type ChallengeOverview struct {
	// Display name of the most completed mode, "N/A" when the player has
	// never completed a challenge
	MainMode string

	TotalCompletions int

	// Descending completions
	Modes []ChallengeModeTotal
}

// ChallengeItem is one challenge row in a mode's detail pane.
type ChallengeItem struct {
	Name        string
	Completions int

	// Experience from the first reward entry, 0 when absent
	RewardXP int
}

// ChallengeModeDetail is the detail pane for one selected mode.
type ChallengeModeDetail struct {
	Mode             string
	Title            string
	Completions      int
	CompletionsLabel string

	// Descending completions
	Challenges []ChallengeItem

	PlaceholderSlots int
}

// AggregateChallenges computes the challenge overview from the challenge
// definitions and the player's all time counters.
func AggregateChallenges(index domain.ChallengeIndex, games domain.GameInfoTable, progress *domain.PlayerProgress) ChallengeOverview {
	overview := ChallengeOverview{MainMode: "N/A"}

	modes := make([]string, 0, len(index))
	for mode := range index {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		completions := 0
		for _, challenge := range index[mode] {
			completions += progress.ChallengeCompletions[challenge.ID]
		}
		overview.Modes = append(overview.Modes, ChallengeModeTotal{
			Mode:        mode,
			Title:       games.NameByDatabaseName(mode),
			Completions: completions,
		})
		overview.TotalCompletions += completions
	}

	sort.SliceStable(overview.Modes, func(i, j int) bool {
		return overview.Modes[i].Completions > overview.Modes[j].Completions
	})

	if len(overview.Modes) > 0 && overview.Modes[0].Completions > 0 {
		overview.MainMode = overview.Modes[0].Title
	}

	return overview
}

// ChallengeModeDetailFor computes the detail pane for one mode.
func ChallengeModeDetailFor(index domain.ChallengeIndex, games domain.GameInfoTable, progress *domain.PlayerProgress, mode string) ChallengeModeDetail {
	detail := ChallengeModeDetail{
		Mode:  mode,
		Title: games.NameByDatabaseName(mode),
	}

	for _, challenge := range index[mode] {
		completions := progress.ChallengeCompletions[challenge.ID]

		rewardXP := 0
		if len(challenge.Rewards) > 0 {
			rewardXP = challenge.Rewards[0].Amount
		}

		detail.Challenges = append(detail.Challenges, ChallengeItem{
			Name:        challenge.Name,
			Completions: completions,
			RewardXP:    rewardXP,
		})
		detail.Completions += completions
	}

	sort.SliceStable(detail.Challenges, func(i, j int) bool {
		return detail.Challenges[i].Completions > detail.Challenges[j].Completions
	})

	detail.CompletionsLabel = completionsLabel(detail.Completions)
	if len(detail.Challenges) < displaySlots {
		detail.PlaceholderSlots = displaySlots - len(detail.Challenges)
	}

	return detail
}
