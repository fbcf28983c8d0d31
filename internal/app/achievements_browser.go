package app

import (
	"github.com/shmeado/lantern/internal/domain"
)

type AchievementView int

const (
	ViewOneTime AchievementView = iota
	ViewTiered
)

type AchievementExpansion int

const (
	ExpansionMinimized AchievementExpansion = iota
	ExpansionExpanded
)

const noOpenItem = -1

// AchievementBrowser holds the interactive browsing state for the
// achievements tab: active ruleset, one-time/tiered view, minimized/expanded
// detail, selected mode and the accordion of open detail items. Definitions
// and player progress are immutable for its lifetime; the overview and mode
// detail are recomputed on each state change rather than cached.
type AchievementBrowser struct {
	index    domain.AchievementIndex
	games    domain.GameInfoTable
	progress *domain.PlayerProgress

	ruleset   domain.Ruleset
	view      AchievementView
	expansion AchievementExpansion

	selectedMode string

	// Accordion state per view, only meaningful while minimized
	openOneTime int
	openTiered  int

	overview AchievementOverview
}

// NewAchievementBrowser computes the initial overview under the current
// ruleset and selects the top ranked mode, mirroring the synthetic first
// click the page performs on load.
func NewAchievementBrowser(
	index domain.AchievementIndex,
	games domain.GameInfoTable,
	progress *domain.PlayerProgress,
) *AchievementBrowser {
	b := &AchievementBrowser{
		index:    index,
		games:    games,
		progress: progress,

		ruleset:   domain.RulesetCurrent,
		view:      ViewOneTime,
		expansion: ExpansionMinimized,

		openOneTime: noOpenItem,
		openTiered:  noOpenItem,
	}

	b.overview = AggregateAchievements(index, games, progress, b.ruleset)
	if len(b.overview.Modes) > 0 {
		b.selectedMode = b.overview.Modes[0].Mode
	}

	return b
}

func (b *AchievementBrowser) Ruleset() domain.Ruleset { return b.ruleset }

func (b *AchievementBrowser) View() AchievementView { return b.view }

func (b *AchievementBrowser) Expansion() AchievementExpansion { return b.expansion }

func (b *AchievementBrowser) SelectedMode() string { return b.selectedMode }

// Overview returns the ruleset-wide overview for the active ruleset.
func (b *AchievementBrowser) Overview() AchievementOverview {
	return b.overview
}

// Detail returns the detail view for the selected mode. Recomputed on every
// call from the immutable inputs.
func (b *AchievementBrowser) Detail() ModeAchievementDetail {
	return ModeAchievementDetailFor(b.index, b.games, b.progress, b.ruleset, b.selectedMode)
}

// SetRuleset switches between the current and legacy rulesets. Selecting the
// already active ruleset is a no-op. A real switch recomputes the overview,
// re-selects the top ranked mode and resets the accordion. Returns whether
// anything changed.
func (b *AchievementBrowser) SetRuleset(ruleset domain.Ruleset) bool {
	if ruleset == b.ruleset {
		return false
	}
	b.ruleset = ruleset

	b.overview = AggregateAchievements(b.index, b.games, b.progress, b.ruleset)
	b.selectedMode = ""
	if len(b.overview.Modes) > 0 {
		b.selectedMode = b.overview.Modes[0].Mode
	}

	b.openOneTime = noOpenItem
	b.openTiered = noOpenItem

	return true
}

// SetView switches between the one-time and tiered lists. Selecting the
// active view is a no-op. The hidden list keeps its accordion state.
func (b *AchievementBrowser) SetView(view AchievementView) bool {
	if view == b.view {
		return false
	}
	b.view = view
	return true
}

// SetExpansion switches between minimized and expanded detail. Selecting the
// active expansion is a no-op. Collapsing to minimized closes every open
// item.
func (b *AchievementBrowser) SetExpansion(expansion AchievementExpansion) bool {
	if expansion == b.expansion {
		return false
	}
	b.expansion = expansion

	if expansion == ExpansionMinimized {
		b.openOneTime = noOpenItem
		b.openTiered = noOpenItem
	}

	return true
}

// SelectMode selects a mode for the detail view, resetting expansion to
// minimized and closing the accordion, as a fresh detail render does.
func (b *AchievementBrowser) SelectMode(mode string) {
	b.selectedMode = mode
	b.expansion = ExpansionMinimized
	b.openOneTime = noOpenItem
	b.openTiered = noOpenItem
}

// ToggleItem opens or closes the detail of one item in the given view's
// list. While minimized, opening an item closes the previously open one.
func (b *AchievementBrowser) ToggleItem(view AchievementView, item int) {
	open := &b.openOneTime
	if view == ViewTiered {
		open = &b.openTiered
	}

	if *open == item {
		*open = noOpenItem
		return
	}
	*open = item
}

// OpenItem returns the index of the open item in the given view's list, or
// -1 when everything is closed.
func (b *AchievementBrowser) OpenItem(view AchievementView) int {
	if view == ViewTiered {
		return b.openTiered
	}
	return b.openOneTime
}

// ItemExpanded reports whether an item's detail is visible: every item while
// expanded, only the accordion's open item while minimized.
func (b *AchievementBrowser) ItemExpanded(view AchievementView, item int) bool {
	if b.expansion == ExpansionExpanded {
		return true
	}
	return b.OpenItem(view) == item
}
