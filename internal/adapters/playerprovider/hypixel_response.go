package playerprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/reporting"
)

type hypixelAPIResponse struct {
	Success bool              `json:"success"`
	Player  *HypixelAPIPlayer `json:"player"`
	Cause   *string           `json:"cause,omitempty"`
}

type HypixelAPIPlayer struct {
	UUID        *string `json:"uuid,omitempty"`
	Displayname *string `json:"displayname,omitempty"`

	// Compound "mode_name" keys -> recorded progress for tiered achievements
	Achievements map[string]int `json:"achievements,omitempty"`
	// Compound "mode_name" keys of unlocked one time achievements. Typed as
	// []any because old payloads occasionally contain non-string entries.
	AchievementsOneTime []any `json:"achievementsOneTime,omitempty"`

	Quests     map[string]HypixelAPIQuest `json:"quests,omitempty"`
	Challenges *HypixelAPIChallenges      `json:"challenges,omitempty"`
}

type HypixelAPIQuest struct {
	Completions []HypixelAPIQuestCompletion `json:"completions,omitempty"`
}

type HypixelAPIQuestCompletion struct {
	Time *int64 `json:"time,omitempty"`
}

type HypixelAPIChallenges struct {
	AllTime map[string]int `json:"all_time,omitempty"`
}

func ParseHypixelAPIResponse(ctx context.Context, data []byte) (*hypixelAPIResponse, error) {
	logger := logging.FromContext(ctx)
	response := new(hypixelAPIResponse)

	err := json.Unmarshal(data, response)
	if err != nil {
		logger.Error("Failed to unmarshal player data", "error", err)
		return nil, err
	}
	return response, nil
}

func checkForHypixelError(ctx context.Context, statusCode int, playerData []byte) error {
	// Only support 200 OK
	if statusCode == 200 {
		// Check for HTML response
		if len(playerData) > 0 && playerData[0] == '<' {
			return fmt.Errorf("Hypixel API returned HTML (%w)", domain.ErrTemporarilyUnavailable)
		}

		return nil
	}

	// Error for unknown status code
	err := fmt.Errorf("Hypixel API returned unsupported status code: %d", statusCode)

	// Errors for known status codes
	switch statusCode {
	case 429:
		err = fmt.Errorf("Hypixel ratelimit exceeded (%w)", domain.ErrTemporarilyUnavailable)
	case 500, 502, 503, 504, 520, 521, 522, 523, 524, 525, 526, 527, 530:
		err = fmt.Errorf("Hypixel returned status code %d (%s) (%w)", statusCode, http.StatusText(statusCode), domain.ErrTemporarilyUnavailable)
	}

	return err
}

func HypixelAPIResponseToPlayerProgress(ctx context.Context, uuid string, playerData []byte, statusCode int) (*domain.PlayerProgress, error) {
	logger := logging.FromContext(ctx)

	if err := checkForHypixelError(ctx, statusCode, playerData); err != nil {
		reporting.Report(
			ctx,
			err,
			map[string]string{
				"uuid":       uuid,
				"statusCode": fmt.Sprint(statusCode),
				"data":       string(playerData),
			},
		)
		logger.Error(
			"Got response from hypixel",
			"status", "error",
			"error", err.Error(),
			"statusCode", statusCode,
			"contentLength", len(playerData),
		)
		return nil, err
	}

	logger.Info(
		"Got response from hypixel",
		"status", "success",
		"statusCode", statusCode,
		"contentLength", len(playerData),
	)

	parsedAPIResponse, err := ParseHypixelAPIResponse(ctx, playerData)
	if err != nil {
		err = fmt.Errorf("failed to parse player data: %w", err)
		reporting.Report(
			ctx,
			err,
			map[string]string{
				"uuid":       uuid,
				"statusCode": fmt.Sprint(statusCode),
				"data":       string(playerData),
			},
		)
		return nil, err
	}

	if !parsedAPIResponse.Success {
		cause := "unknown error (lantern)"
		if parsedAPIResponse.Cause != nil {
			cause = *parsedAPIResponse.Cause
		}
		err := fmt.Errorf("got success=false from Hypixel: %s", cause)
		reporting.Report(
			ctx,
			err,
			map[string]string{
				"uuid":       uuid,
				"statusCode": fmt.Sprint(statusCode),
				"data":       string(playerData),
			},
		)
		return nil, err
	}

	if parsedAPIResponse.Player == nil {
		logger.Info("Player not found")
		return nil, domain.ErrPlayerNotFound
	}

	apiPlayer := parsedAPIResponse.Player

	oneTimeUnlocked := make(map[string]struct{}, len(apiPlayer.AchievementsOneTime))
	for _, entry := range apiPlayer.AchievementsOneTime {
		key, ok := entry.(string)
		if !ok {
			continue
		}
		oneTimeUnlocked[key] = struct{}{}
	}

	tieredProgress := make(map[string]int, len(apiPlayer.Achievements))
	for key, value := range apiPlayer.Achievements {
		tieredProgress[key] = value
	}

	questCompletions := make(map[string]int, len(apiPlayer.Quests))
	for questID, quest := range apiPlayer.Quests {
		questCompletions[questID] = len(quest.Completions)
	}

	challengeCompletions := map[string]int{}
	if apiPlayer.Challenges != nil {
		challengeCompletions = make(map[string]int, len(apiPlayer.Challenges.AllTime))
		for challengeID, count := range apiPlayer.Challenges.AllTime {
			challengeCompletions[challengeID] = count
		}
	}

	return &domain.PlayerProgress{
		UUID: uuid,

		OneTimeUnlocked:      oneTimeUnlocked,
		TieredProgress:       tieredProgress,
		QuestCompletions:     questCompletions,
		ChallengeCompletions: challengeCompletions,
	}, nil
}
