package app_test

import (
	"testing"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func testGames() domain.GameInfoTable {
	return domain.GameInfoTable{
		"BEDWARS": {Name: "Bed Wars", DatabaseName: "Bedwars"},
		"SKYWARS": {Name: "SkyWars", DatabaseName: "SkyWars"},
	}
}

func TestAggregateAchievementsSingleMode(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			OneTime: []domain.OneTimeAchievement{
				{ID: "FIRST_WIN", Name: "First Win", Points: 10},
				{ID: "SECOND_WIN", Name: "Second Win", Points: 5},
			},
			TotalPoints: 15,
		},
	}
	progress := &domain.PlayerProgress{
		OneTimeUnlocked: map[string]struct{}{
			"bedwars_first_win":  {},
			"bedwars_second_win": {},
		},
	}

	overview := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)

	require.Len(t, overview.Modes, 1)
	mode := overview.Modes[0]
	require.Equal(t, "Bed Wars", mode.Title)
	require.Equal(t, 2, mode.Unlocked)
	require.Equal(t, 2, mode.Possible)
	require.Equal(t, 15, mode.Points)
	require.Equal(t, 15, mode.PossiblePoints)
	require.Equal(t, 100, mode.Percentage)
	require.Equal(t, "darkGreen", mode.Color)

	require.Equal(t, 15, overview.TotalPoints)
	require.Equal(t, "100.00%", overview.GlobalPercentage)
}

func TestAggregateAchievementsLegacyPartition(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			OneTime: []domain.OneTimeAchievement{
				{ID: "CURRENT_ONE", Name: "Current One", Points: 10},
				{ID: "OLD_ONE", Name: "Old One", Points: 5, Legacy: true},
			},
			TotalPoints: 10,
		},
	}
	progress := &domain.PlayerProgress{
		OneTimeUnlocked: map[string]struct{}{
			"bedwars_old_one": {},
		},
	}

	current := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)
	require.Len(t, current.Modes, 1)
	require.Equal(t, 0, current.Modes[0].Unlocked)
	require.Equal(t, 1, current.Modes[0].Possible)

	legacy := app.AggregateAchievements(index, testGames(), progress, domain.RulesetLegacy)
	require.Len(t, legacy.Modes, 1)
	require.Equal(t, 1, legacy.Modes[0].Unlocked)
	require.Equal(t, 1, legacy.Modes[0].Possible)
	// No authoritative total exists for legacy; the locally summed value is used
	require.Equal(t, 5, legacy.Modes[0].PossiblePoints)
}

func TestAggregateAchievementsTieredCountsTiers(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			Tiered: []domain.TieredAchievement{
				{
					ID:   "LEVEL",
					Name: "Bed Wars Level",
					Tiers: []domain.AchievementTier{
						{Amount: 5, Points: 5},
						{Amount: 25, Points: 10},
						{Amount: 100, Points: 15},
					},
				},
			},
			TotalPoints: 30,
		},
	}
	progress := &domain.PlayerProgress{
		TieredProgress: map[string]int{
			"bedwars_level": 25,
		},
	}

	overview := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)

	require.Len(t, overview.Modes, 1)
	mode := overview.Modes[0]
	// Unlocked counts tiers, not definitions
	require.Equal(t, 2, mode.Unlocked)
	require.Equal(t, 3, mode.Possible)
	require.Equal(t, 15, mode.Points)
	require.Equal(t, 30, mode.PossiblePoints)
	require.Equal(t, 50, mode.Percentage)
	require.Equal(t, "orange", mode.Color)
}

func TestAggregateAchievementsNoRecordedProgressUnlocksNoTiers(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			Tiered: []domain.TieredAchievement{
				{
					ID:    "LEVEL",
					Name:  "Bed Wars Level",
					Tiers: []domain.AchievementTier{{Amount: 0, Points: 5}},
				},
			},
			TotalPoints: 5,
		},
	}
	// No progress entry at all: even a zero threshold tier stays locked
	progress := &domain.PlayerProgress{}

	overview := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)
	require.Equal(t, 0, overview.Modes[0].Unlocked)
}

func TestAggregateAchievementsSentinelForZeroPossiblePoints(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			OneTime:     []domain.OneTimeAchievement{{ID: "FREEBIE", Name: "Freebie", Points: 0}},
			TotalPoints: 0,
		},
	}
	progress := &domain.PlayerProgress{}

	overview := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)

	require.Len(t, overview.Modes, 1)
	require.Equal(t, -1, overview.Modes[0].Percentage)
	require.Empty(t, overview.Modes[0].PercentageLabel)
	require.Empty(t, overview.GlobalPercentage)
}

func TestAggregateAchievementsExcludesEmptyModes(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			OneTime:     []domain.OneTimeAchievement{{ID: "ONLY_LEGACY", Name: "Only Legacy", Points: 5, Legacy: true}},
			TotalPoints: 0,
		},
	}
	progress := &domain.PlayerProgress{}

	overview := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)
	require.Empty(t, overview.Modes)
}

func TestAggregateAchievementsRankingIsDescendingAndStable(t *testing.T) {
	index := domain.AchievementIndex{
		"arcade": {
			OneTime:     []domain.OneTimeAchievement{{ID: "A", Name: "A", Points: 10}},
			TotalPoints: 10,
		},
		"bedwars": {
			OneTime:     []domain.OneTimeAchievement{{ID: "B", Name: "B", Points: 10}},
			TotalPoints: 10,
		},
		"skywars": {
			OneTime:     []domain.OneTimeAchievement{{ID: "C", Name: "C", Points: 10}},
			TotalPoints: 10,
		},
	}
	progress := &domain.PlayerProgress{
		OneTimeUnlocked: map[string]struct{}{
			"bedwars_b": {},
		},
	}

	overview := app.AggregateAchievements(index, testGames(), progress, domain.RulesetCurrent)

	require.Len(t, overview.Modes, 3)
	require.Equal(t, "bedwars", overview.Modes[0].Mode)
	// Ties keep the deterministic input order
	require.Equal(t, "arcade", overview.Modes[1].Mode)
	require.Equal(t, "skywars", overview.Modes[2].Mode)
}

func TestModeAchievementDetail(t *testing.T) {
	index := domain.AchievementIndex{
		"bedwars": {
			OneTime: []domain.OneTimeAchievement{
				{
					ID:          "FIRST_WIN",
					Name:        "First Win",
					Description: "Win your first game",
					Points:      10,

					GamePercentUnlocked:   floatPtr(62.5),
					GlobalPercentUnlocked: floatPtr(21.257),
				},
				{ID: "RARE_ONE", Name: "Rare One", Description: "Do something rare", Points: 5},
			},
			Tiered: []domain.TieredAchievement{
				{
					ID:          "LEVEL",
					Name:        "Bed Wars Level",
					Description: "Reach level %%value%% in Bed Wars",
					Tiers: []domain.AchievementTier{
						{Amount: 5, Points: 5},
						{Amount: 25, Points: 10},
					},
				},
			},
			TotalPoints: 30,
		},
	}
	progress := &domain.PlayerProgress{
		OneTimeUnlocked: map[string]struct{}{
			"bedwars_first_win": {},
		},
		TieredProgress: map[string]int{
			"bedwars_level": 10,
		},
	}

	detail := app.ModeAchievementDetailFor(index, testGames(), progress, domain.RulesetCurrent, "bedwars")

	require.Equal(t, "Bed Wars", detail.Title)

	require.Len(t, detail.OneTime, 2)
	require.True(t, detail.OneTime[0].Unlocked)
	require.Equal(t, "darkGreen", detail.OneTime[0].Color)
	require.Equal(t, "62.50", detail.OneTime[0].GamePercentUnlocked)
	require.Equal(t, "21.26", detail.OneTime[0].GlobalPercentUnlocked)
	require.False(t, detail.OneTime[1].Unlocked)
	require.Equal(t, "red", detail.OneTime[1].Color)
	require.Equal(t, "N/A", detail.OneTime[1].GamePercentUnlocked)

	require.Len(t, detail.Tiered, 1)
	tiered := detail.Tiered[0]
	require.Equal(t, 1, tiered.CurrentTier)
	require.Equal(t, 10, tiered.CurrentProgress)
	require.Equal(t, "orange", tiered.Color)
	require.Equal(t, "1/2", tiered.TierLabel)

	require.Len(t, tiered.Lines, 2)
	require.Equal(t, "darkGreen", tiered.Lines[0].Color)
	require.Contains(t, tiered.Lines[0].Text, "Reach level 5 in Bed Wars")
	// The in-progress tier carries a progress annotation
	require.Equal(t, "orange", tiered.Lines[1].Color)
	require.Contains(t, tiered.Lines[1].Text, "(10/25 • 40%)")
}
