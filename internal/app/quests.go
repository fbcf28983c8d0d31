package app

import (
	"regexp"
	"sort"

	"github.com/shmeado/lantern/internal/domain"
)

// The quest/challenge detail panes always render at least this many rows,
// padding with inert placeholders when a mode has fewer definitions.
const displaySlots = 4

var colorTagRe = regexp.MustCompile(`%%.*?%%`)

// StripColorTags removes inline %%color%% tags from definition descriptions.
func StripColorTags(s string) string {
	return colorTagRe.ReplaceAllString(s, "")
}

func completionsLabel(completions int) string {
	if completions == 1 {
		return "Completion"
	}
	return "Completions"
}

type RewardView struct {
	Amount int
	Name   string
	Color  string
}

func rewardViews(rewards []domain.Reward) []RewardView {
	views := make([]RewardView, 0, len(rewards))
	for _, reward := range rewards {
		display := domain.DisplayForReward(reward.Type)
		amount := reward.Amount
		if amount == 0 {
			amount = 1
		}
		views = append(views, RewardView{
			Amount: amount,
			Name:   display.Name,
			Color:  display.Color,
		})
	}
	return views
}

// QuestModeTotal is one row of the mode list: a mode and the player's total
// completions across its quests.
type QuestModeTotal struct {
	Mode        string
	Title       string
	Completions int
}

// QuestOverview ranks every mode by the player's total quest completions.
type QuestOverview struct {
	// Display name of the most completed mode, "N/A" when the player has
	// never completed a quest
	MainMode string

	TotalCompletions int

	// Descending completions
	Modes []QuestModeTotal
}

// QuestItem is one quest row in a mode's detail pane.
type QuestItem struct {
	Name        string
	Description string
	Completions int
	Rewards     []RewardView
}

// QuestModeDetail is the detail pane for one selected mode.
type QuestModeDetail struct {
	Mode             string
	Title            string
	Completions      int
	CompletionsLabel string

	// Descending completions
	Quests []QuestItem

	PlaceholderSlots int
}

// AggregateQuests computes the quest overview from the quest definitions and
// the player's completion counters.
func AggregateQuests(index domain.QuestIndex, games domain.GameInfoTable, progress *domain.PlayerProgress) QuestOverview {
	overview := QuestOverview{MainMode: "N/A"}

	modes := make([]string, 0, len(index))
	for mode := range index {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		completions := 0
		for _, quest := range index[mode] {
			completions += progress.QuestCompletions[quest.ID]
		}
		overview.Modes = append(overview.Modes, QuestModeTotal{
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

// QuestModeDetailFor computes the detail pane for one mode.
func QuestModeDetailFor(index domain.QuestIndex, games domain.GameInfoTable, progress *domain.PlayerProgress, mode string) QuestModeDetail {
	detail := QuestModeDetail{
		Mode:  mode,
		Title: games.NameByDatabaseName(mode),
	}

	for _, quest := range index[mode] {
		completions := progress.QuestCompletions[quest.ID]
		detail.Quests = append(detail.Quests, QuestItem{
			Name:        quest.Name,
			Description: StripColorTags(quest.Description),
			Completions: completions,
			Rewards:     rewardViews(quest.Rewards),
		})
		detail.Completions += completions
	}

	sort.SliceStable(detail.Quests, func(i, j int) bool {
		return detail.Quests[i].Completions > detail.Quests[j].Completions
	})

	detail.CompletionsLabel = completionsLabel(detail.Completions)
	if len(detail.Quests) < displaySlots {
		detail.PlaceholderSlots = displaySlots - len(detail.Quests)
	}

	return detail
}
