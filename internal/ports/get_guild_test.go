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

func TestMakeGetGuildHandler(t *testing.T) {
	allowedOrigins := testAllowedOrigins(t)

	makeHandler := func(guild *domain.Guild, err error) http.HandlerFunc {
		getGuild := app.GetGuild(func(ctx context.Context, uuid string) (*domain.Guild, error) {
			require.Equal(t, normalizedTestUUID, uuid)
			return guild, err
		})
		return ports.MakeGetGuildHandler(getGuild, allowedOrigins, testLogger, noopMiddleware)
	}

	t.Run("player in guild", func(t *testing.T) {
		legacyRanking := 312
		handler := makeHandler(&domain.Guild{
			Name:     "The Lanterns",
			Tag:      "LAMP",
			TagColor: "DARK_AQUA",
			Created:  1572549302749,
			Exp:      175000,
			Members: []domain.GuildMember{
				{UUID: normalizedTestUUID, Rank: "Guild Master", Joined: 1572549302749},
			},
			Ranks: []domain.GuildRank{
				{Name: "Officer", Tag: "OFF", Priority: 5, Created: 1572549302749},
			},
			Achievements: domain.GuildAchievements{
				ExperienceKings: 120000,
				Winners:         14,
				OnlinePlayers:   9,
			},
			ExpByGameType: map[string]int64{"BEDWARS": 300},
			LegacyRanking: &legacyRanking,
		}, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("guild", testUUID))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{
			"success": true,
			"guild": {
				"name": "The Lanterns",
				"tag": "LAMP",
				"tagColor": "DARK_AQUA",
				"created": 1572549302749,
				"exp": 175000,
				"members": [
					{"uuid": "0123456789abcdef0123456789abcdef", "rank": "Guild Master", "joined": 1572549302749}
				],
				"ranks": [
					{"name": "Officer", "tag": "OFF", "priority": 5, "created": 1572549302749}
				],
				"achievements": {"experienceKings": 120000, "winners": 14, "onlinePlayers": 9},
				"guildExpByGameType": {"BEDWARS": 300},
				"legacyRanking": 312
			}
		}`, w.Body.String())
	})

	t.Run("player not in guild", func(t *testing.T) {
		handler := makeHandler(nil, domain.ErrNotInGuild)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("guild", testUUID))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success":true,"guild":null}`, w.Body.String())
	})

	t.Run("temporarily unavailable", func(t *testing.T) {
		handler := makeHandler(nil, domain.ErrTemporarilyUnavailable)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("guild", testUUID))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.JSONEq(t, `{"success":false,"guild":null,"cause":"temporarily unavailable"}`, w.Body.String())
	})

	t.Run("invalid uuid", func(t *testing.T) {
		handler := makeHandler(nil, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, makeUUIDRequest("guild", "zzz"))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
