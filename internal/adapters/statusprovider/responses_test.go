package statusprovider

import (
	"testing"

	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSessionFromResponse(t *testing.T) {
	t.Run("online", func(t *testing.T) {
		data := []byte(`{
			"success": true,
			"uuid": "0123456789abcdef0123456789abcdef",
			"session": {
				"online": true,
				"gameType": "BEDWARS",
				"mode": "BEDWARS_EIGHT_TWO",
				"map": "Lighthouse"
			}
		}`)

		session, err := sessionFromResponse(200, data)
		require.NoError(t, err)
		require.Equal(t, domain.OnlineSession{
			Online:   true,
			GameType: "BEDWARS",
			Mode:     "BEDWARS_EIGHT_TWO",
			Map:      "Lighthouse",
		}, session)
	})

	t.Run("offline", func(t *testing.T) {
		data := []byte(`{"success":true,"session":{"online":false}}`)

		session, err := sessionFromResponse(200, data)
		require.NoError(t, err)
		require.False(t, session.Online)
	})

	t.Run("missing session", func(t *testing.T) {
		session, err := sessionFromResponse(200, []byte(`{"success":true}`))
		require.NoError(t, err)
		require.False(t, session.Online)
	})

	t.Run("success false", func(t *testing.T) {
		_, err := sessionFromResponse(200, []byte(`{"success":false,"cause":"Invalid API key"}`))
		require.Error(t, err)
		require.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("ratelimited", func(t *testing.T) {
		_, err := sessionFromResponse(429, []byte(``))
		require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)
	})
}

func TestRecentGamesFromResponse(t *testing.T) {
	t.Run("mixed ongoing and ended", func(t *testing.T) {
		data := []byte(`{
			"success": true,
			"games": [
				{
					"date": 1590850836485,
					"gameType": "SKYWARS",
					"mode": "solo_normal",
					"map": "Shire",
					"ended": 1590850919917
				},
				{
					"date": 1590850836485,
					"gameType": "BEDWARS",
					"mode": "BEDWARS_EIGHT_TWO",
					"map": "Dreamgrove"
				}
			]
		}`)

		games, err := recentGamesFromResponse(200, data)
		require.NoError(t, err)
		require.Equal(t, []domain.RecentGame{
			{
				Date:     1590850836485,
				GameType: "SKYWARS",
				Mode:     "solo_normal",
				Map:      "Shire",
				Ended:    1590850919917,
			},
			{
				Date:     1590850836485,
				GameType: "BEDWARS",
				Mode:     "BEDWARS_EIGHT_TWO",
				Map:      "Dreamgrove",
				Ended:    0,
			},
		}, games)
	})

	t.Run("no games", func(t *testing.T) {
		games, err := recentGamesFromResponse(200, []byte(`{"success":true,"games":[]}`))
		require.NoError(t, err)
		require.Empty(t, games)
	})

	t.Run("html response", func(t *testing.T) {
		_, err := recentGamesFromResponse(200, []byte(`<html></html>`))
		require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)
	})
}

func TestGuildFromResponse(t *testing.T) {
	t.Run("full guild", func(t *testing.T) {
		data := []byte(`{
			"success": true,
			"guild": {
				"name": "The Lanterns",
				"tag": "LAMP",
				"tagColor": "DARK_AQUA",
				"description": "We light the way",
				"created": 1436326222429,
				"exp": 2470000,
				"members": [
					{"uuid": "0123456789abcdef0123456789abcdef", "rank": "Guild Master", "joined": 1436326222429}
				],
				"ranks": [
					{"name": "Member", "tag": "M", "priority": 1, "created": 1436326222429},
					{"name": "Officer", "tag": "O", "priority": 2, "created": 1436326222429}
				],
				"achievements": {
					"EXPERIENCE_KINGS": 232000,
					"WINNERS": 3,
					"ONLINE_PLAYERS": 17
				},
				"guildExpByGameType": {"BEDWARS": 2000000, "SKYWARS": 470000},
				"preferredGames": ["BEDWARS"],
				"legacyRanking": 312
			}
		}`)

		guild, err := guildFromResponse(200, data)
		require.NoError(t, err)
		require.NotNil(t, guild)

		require.Equal(t, "The Lanterns", guild.Name)
		require.Equal(t, "DARK_AQUA", guild.TagColor)
		require.Len(t, guild.Members, 1)
		require.Len(t, guild.Ranks, 2)
		require.Equal(t, 232000, guild.Achievements.ExperienceKings)
		require.Equal(t, int64(2000000), guild.ExpByGameType["BEDWARS"])
		require.Equal(t, []string{"BEDWARS"}, guild.PreferredGames)
		require.NotNil(t, guild.LegacyRanking)
		require.Equal(t, 312, *guild.LegacyRanking)
	})

	t.Run("not in guild", func(t *testing.T) {
		_, err := guildFromResponse(200, []byte(`{"success":true,"guild":null}`))
		require.ErrorIs(t, err, domain.ErrNotInGuild)
	})

	t.Run("no legacy ranking", func(t *testing.T) {
		data := []byte(`{
			"success": true,
			"guild": {"name": "Fresh", "created": 1716326222429, "exp": 0, "achievements": {}}
		}`)

		guild, err := guildFromResponse(200, data)
		require.NoError(t, err)
		require.Nil(t, guild.LegacyRanking)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := guildFromResponse(502, []byte(``))
		require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)
	})
}
