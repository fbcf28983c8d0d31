package ports

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
)

type recentGameJSON struct {
	Date     int64  `json:"date"`
	GameType string `json:"gameType,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Map      string `json:"map,omitempty"`
	Ended    int64  `json:"ended,omitempty"`
}

type recentGamesResponse struct {
	Success bool             `json:"success"`
	Games   []recentGameJSON `json:"games"`
	Cause   string           `json:"cause,omitempty"`
}

func MakeGetRecentGamesHandler(
	getRecentGames app.GetRecentGames,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildStandardMiddleware("getrecentgames", allowedOrigins, rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		handleError := func(ctx context.Context, cause string, statusCode int) {
			writeJSON(ctx, w, statusCode, recentGamesResponse{Success: false, Games: []recentGameJSON{}, Cause: cause})
		}

		ctx, uuid, err := decorateUUIDRequest(ctx, r)
		if err != nil {
			handleError(ctx, "invalid uuid", http.StatusBadRequest)
			return
		}

		games, err := getRecentGames(ctx, uuid)
		if errors.Is(err, domain.ErrTemporarilyUnavailable) {
			handleError(ctx, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			// NOTE: GetRecentGames implementations handle their own error reporting
			handleError(ctx, "internal server error", http.StatusInternalServerError)
			return
		}

		response := recentGamesResponse{
			Success: true,
			Games:   make([]recentGameJSON, 0, len(games)),
		}
		for _, game := range games {
			response.Games = append(response.Games, recentGameJSON{
				Date:     game.Date,
				GameType: game.GameType,
				Mode:     game.Mode,
				Map:      game.Map,
				Ended:    game.Ended,
			})
		}

		writeJSON(ctx, w, http.StatusOK, response)
	}

	return middleware(handler)
}
