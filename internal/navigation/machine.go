package navigation

import (
	"context"
	"fmt"
	"strings"

	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/reporting"
)

// ViewSink receives the visibility transitions the machine computes. The
// previous handle is empty on the very first transition at a level.
type ViewSink interface {
	// Toggle deselects previous and selects next. Implementations must
	// treat the two as one transition; the machine never toggles a single
	// side on its own.
	Toggle(previous, next Handle)

	// ShowContent reveals a tab's content panel and hides its error panel.
	ShowContent(content, errorPanel Handle)

	// ShowError reveals a tab's error panel and hides its content panel.
	ShowError(content, errorPanel Handle)
}

// History receives the serialized selection after every game or tab
// transition. Pushes are non-reloading.
type History interface {
	Push(url string)
}

// Machine tracks the hierarchical (game, tab, sub tab) selection and keeps
// the view sink and URL in step with it. Selections remember their position:
// returning to a game restores the tab and sub tab that were active when the
// player left it.
//
// The machine is not safe for concurrent use. All transitions are expected
// to arrive from a single event loop.
type Machine struct {
	bindings *bindings
	sink     ViewSink
	history  History

	selectedGame string
	// Active tab per game
	selectedTab map[string]string
	// Active sub tab per game and tab, keyed by game + "/" + tab
	selectedSubTab map[string]string

	// Tabs whose loader has completed successfully, keyed like selectedSubTab.
	// A failed load is not recorded, so re-selecting the tab tries again.
	loaded map[string]bool
}

func NewMachine(config Config, sink ViewSink, history History) (*Machine, error) {
	resolved, err := resolveBindings(config)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve navigation bindings: %w", err)
	}

	machine := &Machine{
		bindings:       resolved,
		sink:           sink,
		history:        history,
		selectedTab:    make(map[string]string),
		selectedSubTab: make(map[string]string),
		loaded:         make(map[string]bool),
	}

	for name, game := range resolved.games {
		machine.selectedTab[name] = game.defaultTab
		for tabName, tab := range game.tabs {
			if tab.defaultSubTab != "" {
				machine.selectedSubTab[selectionKey(name, tabName)] = tab.defaultSubTab
			}
		}
	}

	return machine, nil
}

func selectionKey(game, tab string) string {
	return game + "/" + tab
}

// SelectedGame returns the active game, empty before Start.
func (m *Machine) SelectedGame() string { return m.selectedGame }

// SelectedTab returns the active tab of the active game.
func (m *Machine) SelectedTab() string { return m.selectedTab[m.selectedGame] }

// SelectedSubTab returns the active sub tab of the active tab, empty when
// the tab has none.
func (m *Machine) SelectedSubTab() string {
	return m.selectedSubTab[selectionKey(m.selectedGame, m.SelectedTab())]
}

// Start issues the synthetic first selection: the default game is selected
// as if the player had clicked it, triggering the initial URL push and any
// load its default tab requires.
func (m *Machine) Start(ctx context.Context) error {
	return m.SelectGame(ctx, m.bindings.defaultGame)
}

// SelectGame makes game the active game. The previously active game is
// deselected in the same transition. Selecting the already active game skips
// the visibility toggle but still re-serializes the URL and ensures the
// active tab's data is loaded.
func (m *Machine) SelectGame(ctx context.Context, game string) error {
	next, ok := m.bindings.games[game]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}

	if game != m.selectedGame {
		var previous Handle
		if old, ok := m.bindings.games[m.selectedGame]; ok {
			previous = old.handle
		}
		m.sink.Toggle(previous, next.handle)
		m.selectedGame = game
	}

	logging.FromContext(ctx).InfoContext(ctx, "Selected game", "game", game)

	m.pushURL()

	return m.load(ctx, game, m.selectedTab[game])
}

// SelectTab makes tab the active tab of the active game. The previously
// active tab is deselected in the same transition and the tab's data is
// loaded on first visit.
func (m *Machine) SelectTab(ctx context.Context, tab string) error {
	game, ok := m.bindings.games[m.selectedGame]
	if !ok {
		return fmt.Errorf("%w: no game selected", ErrUnknownGame)
	}
	next, ok := game.tabs[tab]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}

	if active := m.selectedTab[m.selectedGame]; tab != active {
		var previous Handle
		if old, ok := game.tabs[active]; ok {
			previous = old.handle
		}
		m.sink.Toggle(previous, next.handle)
		m.selectedTab[m.selectedGame] = tab
	}

	logging.FromContext(ctx).InfoContext(ctx, "Selected tab", "game", m.selectedGame, "tab", tab)

	m.pushURL()

	return m.load(ctx, m.selectedGame, tab)
}

// SelectSubTab makes subTab the active sub tab of the active tab. Sub tabs
// never load data and are not serialized into the URL.
func (m *Machine) SelectSubTab(ctx context.Context, subTab string) error {
	game, ok := m.bindings.games[m.selectedGame]
	if !ok {
		return fmt.Errorf("%w: no game selected", ErrUnknownGame)
	}
	activeTab := m.selectedTab[m.selectedGame]
	tab, ok := game.tabs[activeTab]
	if !ok {
		return fmt.Errorf("%w: no tab selected", ErrUnknownTab)
	}
	next, ok := tab.subTabs[subTab]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSubTab, subTab)
	}

	key := selectionKey(m.selectedGame, activeTab)
	if active := m.selectedSubTab[key]; subTab != active {
		var previous Handle
		if old, ok := tab.subTabs[active]; ok {
			previous = old.handle
		}
		m.sink.Toggle(previous, next.handle)
		m.selectedSubTab[key] = subTab
	}

	return nil
}

// load runs a tab's loader on first visit. Load failures flip the tab to
// its error panel and are reported, but never propagate: one tab's failure
// must not take down the rest of the page.
func (m *Machine) load(ctx context.Context, game, tab string) error {
	binding := m.bindings.games[game].tabs[tab]
	if binding.loader == nil {
		return nil
	}

	key := selectionKey(game, tab)
	if m.loaded[key] {
		return nil
	}

	if err := binding.loader(ctx); err != nil {
		err = fmt.Errorf("failed to load tab data: %w", err)
		logging.FromContext(ctx).ErrorContext(ctx, "Failed to load tab data", "game", game, "tab", tab, "error", err.Error())
		reporting.Report(ctx, err, map[string]string{
			"game": game,
			"tab":  tab,
		})
		m.sink.ShowError(binding.contentHandle, binding.errorHandle)
		return nil
	}

	m.loaded[key] = true
	m.sink.ShowContent(binding.contentHandle, binding.errorHandle)
	return nil
}

func (m *Machine) pushURL() {
	url := strings.ReplaceAll(m.bindings.urlTemplate, "param:game", m.selectedGame)
	url = strings.ReplaceAll(url, "param:tab", m.selectedTab[m.selectedGame])
	m.history.Push(url)
}
