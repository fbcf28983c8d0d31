package navigation

import (
	"context"
	"errors"
	"fmt"
)

// Handle identifies one view slot in the view sink. Handles are opaque to
// the machine; the sink decides what a handle maps to.
type Handle string

// Loader loads the supplementary data a tab needs before it can render.
// Loaders run at most once per machine lifetime per tab; re-selecting an
// already loaded tab is a pure visibility toggle.
type Loader func(ctx context.Context) error

type SubTabConfig struct {
	Name   string
	Handle Handle
}

type TabConfig struct {
	Name   string
	Handle Handle

	// Handles for the tab's content and error panels. The machine shows
	// exactly one of the two after a load attempt.
	ContentHandle Handle
	ErrorHandle   Handle

	// nil when the tab renders from data already present at page load
	Loader Loader

	SubTabs []SubTabConfig
	// Empty when the tab has no sub tabs
	DefaultSubTab string
}

type GameConfig struct {
	Name   string
	Handle Handle

	Tabs       []TabConfig
	DefaultTab string
}

// Config declares every selectable view slot up front. The machine resolves
// it into bindings once at construction, so a selection event never has to
// assemble identifiers on the fly.
type Config struct {
	Games       []GameConfig
	DefaultGame string

	// URL template with param:game and param:tab placeholders. The sub tab
	// is deliberately not part of the URL.
	URLTemplate string
}

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrUnknownTab    = errors.New("unknown tab")
	ErrUnknownSubTab = errors.New("unknown sub tab")
)

type subTabBinding struct {
	handle Handle
}

type tabBinding struct {
	handle        Handle
	contentHandle Handle
	errorHandle   Handle
	loader        Loader

	subTabs       map[string]subTabBinding
	defaultSubTab string
}

type gameBinding struct {
	handle Handle

	tabs       map[string]*tabBinding
	defaultTab string
}

type bindings struct {
	games       map[string]*gameBinding
	defaultGame string
	urlTemplate string
}

func resolveBindings(config Config) (*bindings, error) {
	if len(config.Games) == 0 {
		return nil, errors.New("no games configured")
	}

	resolved := &bindings{
		games:       make(map[string]*gameBinding, len(config.Games)),
		defaultGame: config.DefaultGame,
		urlTemplate: config.URLTemplate,
	}

	for _, game := range config.Games {
		if game.Name == "" || game.Handle == "" {
			return nil, fmt.Errorf("game %q: missing name or handle", game.Name)
		}
		if _, ok := resolved.games[game.Name]; ok {
			return nil, fmt.Errorf("game %q: configured twice", game.Name)
		}
		if len(game.Tabs) == 0 {
			return nil, fmt.Errorf("game %q: no tabs configured", game.Name)
		}

		gb := &gameBinding{
			handle:     game.Handle,
			tabs:       make(map[string]*tabBinding, len(game.Tabs)),
			defaultTab: game.DefaultTab,
		}

		for _, tab := range game.Tabs {
			if tab.Name == "" || tab.Handle == "" {
				return nil, fmt.Errorf("game %q: tab %q: missing name or handle", game.Name, tab.Name)
			}
			if _, ok := gb.tabs[tab.Name]; ok {
				return nil, fmt.Errorf("game %q: tab %q: configured twice", game.Name, tab.Name)
			}

			tb := &tabBinding{
				handle:        tab.Handle,
				contentHandle: tab.ContentHandle,
				errorHandle:   tab.ErrorHandle,
				loader:        tab.Loader,
				subTabs:       make(map[string]subTabBinding, len(tab.SubTabs)),
				defaultSubTab: tab.DefaultSubTab,
			}

			for _, subTab := range tab.SubTabs {
				if subTab.Name == "" || subTab.Handle == "" {
					return nil, fmt.Errorf("game %q: tab %q: sub tab %q: missing name or handle", game.Name, tab.Name, subTab.Name)
				}
				if _, ok := tb.subTabs[subTab.Name]; ok {
					return nil, fmt.Errorf("game %q: tab %q: sub tab %q: configured twice", game.Name, tab.Name, subTab.Name)
				}
				tb.subTabs[subTab.Name] = subTabBinding{handle: subTab.Handle}
			}

			if tb.defaultSubTab != "" {
				if _, ok := tb.subTabs[tb.defaultSubTab]; !ok {
					return nil, fmt.Errorf("game %q: tab %q: default sub tab %q not configured", game.Name, tab.Name, tb.defaultSubTab)
				}
			}

			gb.tabs[tab.Name] = tb
		}

		if _, ok := gb.tabs[game.DefaultTab]; !ok {
			return nil, fmt.Errorf("game %q: default tab %q not configured", game.Name, game.DefaultTab)
		}

		resolved.games[game.Name] = gb
	}

	if _, ok := resolved.games[config.DefaultGame]; !ok {
		return nil, fmt.Errorf("default game %q not configured", config.DefaultGame)
	}

	return resolved, nil
}
