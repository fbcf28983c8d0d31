package resourceprovider

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/shmeado/lantern/internal/domain"
)

type resourceEnvelope struct {
	Success bool    `json:"success"`
	Cause   *string `json:"cause,omitempty"`
}

func checkEnvelope(data []byte) error {
	var envelope resourceEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to parse resource envelope: %w", err)
	}
	if !envelope.Success {
		cause := "unknown error (lantern)"
		if envelope.Cause != nil {
			cause = *envelope.Cause
		}
		return fmt.Errorf("got success=false from resource API: %s", cause)
	}
	return nil
}

type questsResponse struct {
	Quests map[string][]questEntry `json:"quests"`
}

type questEntry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Rewards     []rewardEntry `json:"rewards"`
}

type rewardEntry struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

func rewardsFromEntries(entries []rewardEntry) []domain.Reward {
	rewards := make([]domain.Reward, 0, len(entries))
	for _, entry := range entries {
		rewards = append(rewards, domain.Reward{
			Type:   entry.Type,
			Amount: entry.Amount,
		})
	}
	return rewards
}

func questIndexFromResponse(data []byte) (domain.QuestIndex, error) {
	if err := checkEnvelope(data); err != nil {
		return nil, err
	}

	var response questsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse quests response: %w", err)
	}

	index := make(domain.QuestIndex, len(response.Quests))
	for mode, entries := range response.Quests {
		quests := make([]domain.Quest, 0, len(entries))
		for _, entry := range entries {
			quests = append(quests, domain.Quest{
				ID:          entry.ID,
				Name:        entry.Name,
				Description: entry.Description,
				Rewards:     rewardsFromEntries(entry.Rewards),
			})
		}
		index[mode] = quests
	}
	return index, nil
}

type challengesResponse struct {
	Challenges map[string][]challengeEntry `json:"challenges"`
}

type challengeEntry struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Rewards []rewardEntry `json:"rewards"`
}

func challengeIndexFromResponse(data []byte) (domain.ChallengeIndex, error) {
	if err := checkEnvelope(data); err != nil {
		return nil, err
	}

	var response challengesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse challenges response: %w", err)
	}

	index := make(domain.ChallengeIndex, len(response.Challenges))
	for mode, entries := range response.Challenges {
		challenges := make([]domain.Challenge, 0, len(entries))
		for _, entry := range entries {
			challenges = append(challenges, domain.Challenge{
				ID:      entry.ID,
				Name:    entry.Name,
				Rewards: rewardsFromEntries(entry.Rewards),
			})
		}
		index[mode] = challenges
	}
	return index, nil
}

type achievementsResponse struct {
	Achievements map[string]modeAchievementsEntry `json:"achievements"`
}

type modeAchievementsEntry struct {
	OneTime     map[string]oneTimeEntry `json:"one_time"`
	Tiered      map[string]tieredEntry  `json:"tiered"`
	TotalPoints int                     `json:"total_points"`
}

type oneTimeEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	// Mere presence of the marker makes a definition legacy, regardless of
	// its value
	Legacy json.RawMessage `json:"legacy,omitempty"`

	GamePercentUnlocked   *float64 `json:"gamePercentUnlocked,omitempty"`
	GlobalPercentUnlocked *float64 `json:"globalPercentUnlocked,omitempty"`
}

type tieredEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tiers       []tierEntry     `json:"tiers"`
	Legacy      json.RawMessage `json:"legacy,omitempty"`
}

type tierEntry struct {
	Tier   int `json:"tier"`
	Amount int `json:"amount"`
	Points int `json:"points"`
}

func achievementIndexFromResponse(data []byte) (domain.AchievementIndex, error) {
	if err := checkEnvelope(data); err != nil {
		return nil, err
	}

	var response achievementsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse achievements response: %w", err)
	}

	index := make(domain.AchievementIndex, len(response.Achievements))
	for mode, entry := range response.Achievements {
		oneTime := make([]domain.OneTimeAchievement, 0, len(entry.OneTime))
		// Definitions are keyed by ID in the payload; ingest in sorted ID
		// order so aggregation output is deterministic.
		for _, id := range slices.Sorted(maps.Keys(entry.OneTime)) {
			def := entry.OneTime[id]
			oneTime = append(oneTime, domain.OneTimeAchievement{
				ID:          id,
				Name:        def.Name,
				Description: def.Description,
				Points:      def.Points,
				Legacy:      def.Legacy != nil,

				GamePercentUnlocked:   def.GamePercentUnlocked,
				GlobalPercentUnlocked: def.GlobalPercentUnlocked,
			})
		}

		tiered := make([]domain.TieredAchievement, 0, len(entry.Tiered))
		for _, id := range slices.Sorted(maps.Keys(entry.Tiered)) {
			def := entry.Tiered[id]
			tiers := make([]domain.AchievementTier, 0, len(def.Tiers))
			for _, tier := range def.Tiers {
				tiers = append(tiers, domain.AchievementTier{
					Amount: tier.Amount,
					Points: tier.Points,
				})
			}
			tiered = append(tiered, domain.TieredAchievement{
				ID:          id,
				Name:        def.Name,
				Description: def.Description,
				Tiers:       tiers,
				Legacy:      def.Legacy != nil,
			})
		}

		index[mode] = domain.ModeAchievements{
			OneTime:     oneTime,
			Tiered:      tiered,
			TotalPoints: entry.TotalPoints,
		}
	}
	return index, nil
}

type gamesResponse struct {
	Games map[string]gameEntry `json:"games"`
}

type gameEntry struct {
	Name         string            `json:"name"`
	DatabaseName string            `json:"databaseName"`
	ModeNames    map[string]string `json:"modeNames"`
}

func gameInfoTableFromResponse(data []byte) (domain.GameInfoTable, error) {
	if err := checkEnvelope(data); err != nil {
		return nil, err
	}

	var response gamesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse games response: %w", err)
	}

	table := make(domain.GameInfoTable, len(response.Games))
	for gameType, entry := range response.Games {
		table[gameType] = domain.GameInfo{
			Name:         entry.Name,
			DatabaseName: entry.DatabaseName,
			ModeNames:    entry.ModeNames,
		}
	}
	return table, nil
}
