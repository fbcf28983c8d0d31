package playerprovider

import (
	"context"
	"testing"

	"github.com/shmeado/lantern/internal/domain"
	"github.com/stretchr/testify/require"
)

const progressUUID = "01234567-89ab-cdef-0123-456789abcdef"

func TestHypixelAPIResponseToPlayerProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("full payload", func(t *testing.T) {
		data := []byte(`{
			"success": true,
			"player": {
				"uuid": "0123456789abcdef0123456789abcdef",
				"displayname": "Skydeath",
				"achievements": {
					"bedwars_level": 120,
					"skywars_kills_solo": 404
				},
				"achievementsOneTime": [
					"general_first_join",
					"bedwars_first_win",
					["junk_nested_entry"],
					12
				],
				"quests": {
					"bedwars_daily_win": {
						"completions": [{"time": 1576054524324}, {"time": 1576140924324}]
					},
					"skywars_solo_win": {
						"active": {"objectives": {}},
						"completions": []
					}
				},
				"challenges": {
					"all_time": {
						"BEDWARS__defensive": 5,
						"SKYWARS__feeding_the_void": 17
					}
				}
			}
		}`)

		progress, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, data, 200)
		require.NoError(t, err)
		require.NotNil(t, progress)

		require.Equal(t, progressUUID, progress.UUID)

		require.Equal(t, map[string]struct{}{
			"general_first_join": {},
			"bedwars_first_win":  {},
		}, progress.OneTimeUnlocked)

		require.Equal(t, map[string]int{
			"bedwars_level":      120,
			"skywars_kills_solo": 404,
		}, progress.TieredProgress)

		require.Equal(t, map[string]int{
			"bedwars_daily_win": 2,
			"skywars_solo_win":  0,
		}, progress.QuestCompletions)

		require.Equal(t, map[string]int{
			"BEDWARS__defensive":        5,
			"SKYWARS__feeding_the_void": 17,
		}, progress.ChallengeCompletions)
	})

	t.Run("minimal payload", func(t *testing.T) {
		data := []byte(`{"success":true,"player":{"uuid":"0123456789abcdef0123456789abcdef"}}`)

		progress, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, data, 200)
		require.NoError(t, err)
		require.NotNil(t, progress)

		require.Empty(t, progress.OneTimeUnlocked)
		require.Empty(t, progress.TieredProgress)
		require.Empty(t, progress.QuestCompletions)
		require.Empty(t, progress.ChallengeCompletions)
	})

	t.Run("player not found", func(t *testing.T) {
		data := []byte(`{"success":true,"player":null}`)

		_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, data, 200)
		require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("success false", func(t *testing.T) {
		data := []byte(`{"success":false,"cause":"Invalid API key"}`)

		_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, data, 200)
		require.Error(t, err)
		require.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("html response", func(t *testing.T) {
		data := []byte(`<html><body>502 Bad Gateway</body></html>`)

		_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, data, 200)
		require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)
	})

	t.Run("ratelimited", func(t *testing.T) {
		_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, []byte(`{}`), 429)
		require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)
	})

	t.Run("server error", func(t *testing.T) {
		for _, statusCode := range []int{500, 502, 503, 504, 522} {
			_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, []byte(``), statusCode)
			require.ErrorIs(t, err, domain.ErrTemporarilyUnavailable)
		}
	})

	t.Run("unsupported status code", func(t *testing.T) {
		_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, []byte(``), 403)
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrTemporarilyUnavailable)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := HypixelAPIResponseToPlayerProgress(ctx, progressUUID, []byte(`{"success":true,`), 200)
		require.Error(t, err)
	})
}

func TestHypixelProgressProviderRejectsDenormalizedUUID(t *testing.T) {
	provider, err := NewHypixelProgressProvider(&mockedHypixelAPI{})
	require.NoError(t, err)

	_, err = provider.GetPlayerProgress(context.Background(), "0123456789abcdef0123456789abcdef")
	require.Error(t, err)
}
