package app

import (
	"time"

	"github.com/shmeado/lantern/internal/domain"
)

// RecentGameRow is one display-ready row of the recent games table.
type RecentGameRow struct {
	Game string
	// "N/A" when the mode is unknown
	Mode string
	// "N/A" when the game did not expose a map
	Map     string
	Started string
	// "Ongoing" while the game has not ended
	Duration string
	// Time since the game ended, e.g. "2h 13m ago"; "Ongoing" while running
	Ended string
}

// RecentGamesView is the display-ready recent games table.
type RecentGamesView struct {
	Count int
	Rows  []RecentGameRow
}

// RecentGamesViewFor translates the raw recent games into display rows,
// preserving the API's most-recent-first order.
func RecentGamesViewFor(games []domain.RecentGame, table domain.GameInfoTable, now time.Time) RecentGamesView {
	view := RecentGamesView{Count: len(games)}

	for _, game := range games {
		row := RecentGameRow{
			Game:     table.Name(game.GameType),
			Mode:     "N/A",
			Map:      "N/A",
			Started:  domain.FormatTimestamp(game.Date),
			Duration: "Ongoing",
			Ended:    "Ongoing",
		}

		if mode := table.ModeName(game.GameType, game.Mode); mode != "" {
			row.Mode = mode
		}
		if game.Map != "" {
			row.Map = game.Map
		}
		if game.Ended != 0 {
			row.Duration = domain.FormatDuration(time.Duration(game.Ended-game.Date)*time.Millisecond, "")
			row.Ended = domain.FormatDuration(now.Sub(time.UnixMilli(game.Ended)), " ago")
		}

		view.Rows = append(view.Rows, row)
	}

	return view
}
