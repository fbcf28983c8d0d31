package app

import (
	"github.com/shmeado/lantern/internal/domain"
)

// OnlineView is the display-ready online status panel.
type OnlineView struct {
	Online bool

	Game string
	// "Lobby" for lobby sessions, the translated mode name otherwise.
	// Empty when the mode is unknown.
	Mode string

	Map    string
	HasMap bool
}

// OnlineViewFor translates the raw session into display names. The games
// table is only needed for online sessions; offline players render without
// any detail.
func OnlineViewFor(session domain.OnlineSession, games domain.GameInfoTable) OnlineView {
	view := OnlineView{Online: session.Online}
	if !session.Online {
		return view
	}

	game := session.GameType
	if game == "" {
		game = "Unknown Game"
	} else {
		game = games.Name(game)
	}
	view.Game = game

	if session.Mode == "LOBBY" {
		view.Mode = "Lobby"
	} else {
		view.Mode = games.ModeName(session.GameType, session.Mode)
	}

	if session.Map != "" {
		view.Map = session.Map
		view.HasMap = true
	}

	return view
}
