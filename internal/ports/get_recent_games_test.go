package ports_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/ports"
	"github.com/stretchr/testify/require"
)

func TestMakeGetRecentGamesHandler(t *testing.T) {
	allowedOrigins := testAllowedOrigins(t)

	makeHandler := func(games []domain.RecentGame, err error) http.HandlerFunc {
		getRecentGames := app.GetRecentGames(func(ctx context.Context, uuid string) ([]domain.RecentGame, error) {
			require.Equal(t, normalizedTestUUID, uuid)
			return games, err
		})
		return ports.MakeGetRecentGamesHandler(getRecentGames, allowedOrigins, testLogger, noopMiddleware)
	}

	t.Run("mixed ongoing and ended games", func(t *testing.T) {
		handler := makeHandler([]domain.RecentGame{
			{Date: 1700000000000, GameType: "BEDWARS", Mode: "BEDWARS_EIGHT_TWO"},
			{Date: 1699990000000, GameType: "SKYWARS", Mode: "solo_normal", Map: "Aquarium", Ended: 1699991000000},
		}, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("recentgames", testUUID))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{
			"success": true,
			"games": [
				{"date": 1700000000000, "gameType": "BEDWARS", "mode": "BEDWARS_EIGHT_TWO"},
				{"date": 1699990000000, "gameType": "SKYWARS", "mode": "solo_normal", "map": "Aquarium", "ended": 1699991000000}
			]
		}`, w.Body.String())
	})

	t.Run("no recent games", func(t *testing.T) {
		handler := makeHandler(nil, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("recentgames", testUUID))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"games":[]}`, w.Body.String())
	})

	t.Run("temporarily unavailable", func(t *testing.T) {
		handler := makeHandler(nil, domain.ErrTemporarilyUnavailable)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("recentgames", testUUID))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.JSONEq(t, `{"success":false,"games":[],"cause":"temporarily unavailable"}`, w.Body.String())
	})
}
