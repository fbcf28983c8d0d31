package app_test

import (
	"testing"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

func browserFixture() *app.AchievementBrowser {
	index := domain.AchievementIndex{
		"bedwars": {
			OneTime: []domain.OneTimeAchievement{
				{ID: "FIRST_WIN", Name: "First Win", Points: 10},
				{ID: "OLD_ONE", Name: "Old One", Points: 5, Legacy: true},
			},
			Tiered: []domain.TieredAchievement{
				{
					ID:    "LEVEL",
					Name:  "Bed Wars Level",
					Tiers: []domain.AchievementTier{{Amount: 5, Points: 5}},
				},
			},
			TotalPoints: 15,
		},
		"skywars": {
			OneTime:     []domain.OneTimeAchievement{{ID: "TOUCH_SKY", Name: "Touch Sky", Points: 10}},
			TotalPoints: 10,
		},
	}
	progress := &domain.PlayerProgress{
		OneTimeUnlocked: map[string]struct{}{
			"bedwars_first_win": {},
			"bedwars_old_one":   {},
		},
		TieredProgress: map[string]int{
			"bedwars_level": 7,
		},
	}

	return app.NewAchievementBrowser(index, testGames(), progress)
}

func TestBrowserInitialState(t *testing.T) {
	browser := browserFixture()

	require.Equal(t, domain.RulesetCurrent, browser.Ruleset())
	require.Equal(t, app.ViewOneTime, browser.View())
	require.Equal(t, app.ExpansionMinimized, browser.Expansion())

	// Top ranked mode is pre-selected
	require.Equal(t, "bedwars", browser.SelectedMode())
}

func TestBrowserRulesetDoubleToggleRestoresTotals(t *testing.T) {
	browser := browserFixture()

	before := browser.Overview()

	require.True(t, browser.SetRuleset(domain.RulesetLegacy))
	require.NotEqual(t, before, browser.Overview())

	require.True(t, browser.SetRuleset(domain.RulesetCurrent))
	require.Equal(t, before, browser.Overview())
}

func TestBrowserSettersAreIdempotent(t *testing.T) {
	browser := browserFixture()

	require.False(t, browser.SetRuleset(domain.RulesetCurrent))
	require.False(t, browser.SetView(app.ViewOneTime))
	require.False(t, browser.SetExpansion(app.ExpansionMinimized))

	require.True(t, browser.SetView(app.ViewTiered))
	require.False(t, browser.SetView(app.ViewTiered))

	require.True(t, browser.SetExpansion(app.ExpansionExpanded))
	require.False(t, browser.SetExpansion(app.ExpansionExpanded))
}

func TestBrowserAccordion(t *testing.T) {
	browser := browserFixture()

	require.Equal(t, -1, browser.OpenItem(app.ViewOneTime))

	browser.ToggleItem(app.ViewOneTime, 0)
	require.True(t, browser.ItemExpanded(app.ViewOneTime, 0))
	require.False(t, browser.ItemExpanded(app.ViewOneTime, 1))

	// Opening another item closes the previous one
	browser.ToggleItem(app.ViewOneTime, 1)
	require.False(t, browser.ItemExpanded(app.ViewOneTime, 0))
	require.True(t, browser.ItemExpanded(app.ViewOneTime, 1))

	// Toggling the open item closes it
	browser.ToggleItem(app.ViewOneTime, 1)
	require.Equal(t, -1, browser.OpenItem(app.ViewOneTime))
}

func TestBrowserExpandedShowsEverything(t *testing.T) {
	browser := browserFixture()

	browser.SetExpansion(app.ExpansionExpanded)
	require.True(t, browser.ItemExpanded(app.ViewOneTime, 0))
	require.True(t, browser.ItemExpanded(app.ViewOneTime, 5))

	// Collapsing closes every open item
	browser.SetExpansion(app.ExpansionMinimized)
	require.False(t, browser.ItemExpanded(app.ViewOneTime, 0))
}

func TestBrowserSelectModeResetsDetailState(t *testing.T) {
	browser := browserFixture()

	browser.SetExpansion(app.ExpansionExpanded)
	browser.ToggleItem(app.ViewOneTime, 0)

	browser.SelectMode("skywars")
	require.Equal(t, "skywars", browser.SelectedMode())
	require.Equal(t, app.ExpansionMinimized, browser.Expansion())
	require.Equal(t, -1, browser.OpenItem(app.ViewOneTime))

	detail := browser.Detail()
	require.Equal(t, "SkyWars", detail.Title)
}

func TestBrowserLegacyDetail(t *testing.T) {
	browser := browserFixture()

	browser.SetRuleset(domain.RulesetLegacy)

	// Only bedwars has legacy definitions
	require.Equal(t, "bedwars", browser.SelectedMode())
	detail := browser.Detail()
	require.Len(t, detail.OneTime, 1)
	require.Equal(t, "Old One", detail.OneTime[0].Name)
	require.Empty(t, detail.Tiered)
}
