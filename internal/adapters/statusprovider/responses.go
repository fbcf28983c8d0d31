package statusprovider

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shmeado/lantern/internal/domain"
)

func checkStatusCode(statusCode int, data []byte) error {
	if statusCode == 200 {
		if len(data) > 0 && data[0] == '<' {
			return fmt.Errorf("Hypixel API returned HTML (%w)", domain.ErrTemporarilyUnavailable)
		}
		return nil
	}

	switch statusCode {
	case 429:
		return fmt.Errorf("Hypixel ratelimit exceeded (%w)", domain.ErrTemporarilyUnavailable)
	case 500, 502, 503, 504, 520, 521, 522, 523, 524, 525, 526, 527, 530:
		return fmt.Errorf("Hypixel returned status code %d (%s) (%w)", statusCode, http.StatusText(statusCode), domain.ErrTemporarilyUnavailable)
	}

	return fmt.Errorf("Hypixel API returned unsupported status code: %d", statusCode)
}

func checkSuccess(success bool, cause *string) error {
	if success {
		return nil
	}
	message := "unknown error (lantern)"
	if cause != nil {
		message = *cause
	}
	return fmt.Errorf("got success=false from Hypixel: %s", message)
}

type statusResponse struct {
	Success bool          `json:"success"`
	Cause   *string       `json:"cause,omitempty"`
	Session *sessionEntry `json:"session"`
}

type sessionEntry struct {
	Online   bool   `json:"online"`
	GameType string `json:"gameType,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Map      string `json:"map,omitempty"`
}

func sessionFromResponse(statusCode int, data []byte) (domain.OnlineSession, error) {
	if err := checkStatusCode(statusCode, data); err != nil {
		return domain.OnlineSession{}, err
	}

	var response statusResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return domain.OnlineSession{}, fmt.Errorf("failed to parse status response: %w", err)
	}
	if err := checkSuccess(response.Success, response.Cause); err != nil {
		return domain.OnlineSession{}, err
	}

	if response.Session == nil {
		return domain.OnlineSession{}, nil
	}

	return domain.OnlineSession{
		Online:   response.Session.Online,
		GameType: response.Session.GameType,
		Mode:     response.Session.Mode,
		Map:      response.Session.Map,
	}, nil
}

type recentGamesResponse struct {
	Success bool              `json:"success"`
	Cause   *string           `json:"cause,omitempty"`
	Games   []recentGameEntry `json:"games"`
}

type recentGameEntry struct {
	Date     int64  `json:"date"`
	GameType string `json:"gameType"`
	Mode     string `json:"mode,omitempty"`
	Map      string `json:"map,omitempty"`
	// Absent while the game is still ongoing
	Ended *int64 `json:"ended,omitempty"`
}

func recentGamesFromResponse(statusCode int, data []byte) ([]domain.RecentGame, error) {
	if err := checkStatusCode(statusCode, data); err != nil {
		return nil, err
	}

	var response recentGamesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse recent games response: %w", err)
	}
	if err := checkSuccess(response.Success, response.Cause); err != nil {
		return nil, err
	}

	games := make([]domain.RecentGame, 0, len(response.Games))
	for _, entry := range response.Games {
		game := domain.RecentGame{
			Date:     entry.Date,
			GameType: entry.GameType,
			Mode:     entry.Mode,
			Map:      entry.Map,
		}
		if entry.Ended != nil {
			game.Ended = *entry.Ended
		}
		games = append(games, game)
	}
	return games, nil
}

type guildResponse struct {
	Success bool        `json:"success"`
	Cause   *string     `json:"cause,omitempty"`
	Guild   *guildEntry `json:"guild"`
}

type guildEntry struct {
	Name        string `json:"name"`
	Tag         string `json:"tag,omitempty"`
	TagColor    string `json:"tagColor,omitempty"`
	Description string `json:"description,omitempty"`
	Created     int64  `json:"created"`
	Exp         int64  `json:"exp"`

	Members []guildMemberEntry `json:"members,omitempty"`
	Ranks   []guildRankEntry   `json:"ranks,omitempty"`

	Achievements       guildAchievementsEntry `json:"achievements"`
	GuildExpByGameType map[string]int64       `json:"guildExpByGameType,omitempty"`
	PreferredGames     []string               `json:"preferredGames,omitempty"`

	LegacyRanking *int `json:"legacyRanking,omitempty"`
}

type guildMemberEntry struct {
	UUID   string `json:"uuid"`
	Rank   string `json:"rank"`
	Joined int64  `json:"joined"`
}

type guildRankEntry struct {
	Name     string `json:"name"`
	Tag      string `json:"tag,omitempty"`
	Priority int    `json:"priority"`
	Created  int64  `json:"created"`
}

type guildAchievementsEntry struct {
	ExperienceKings int `json:"EXPERIENCE_KINGS,omitempty"`
	Winners         int `json:"WINNERS,omitempty"`
	OnlinePlayers   int `json:"ONLINE_PLAYERS,omitempty"`
}

func guildFromResponse(statusCode int, data []byte) (*domain.Guild, error) {
	if err := checkStatusCode(statusCode, data); err != nil {
		return nil, err
	}

	var response guildResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse guild response: %w", err)
	}
	if err := checkSuccess(response.Success, response.Cause); err != nil {
		return nil, err
	}

	if response.Guild == nil {
		return nil, domain.ErrNotInGuild
	}

	entry := response.Guild

	members := make([]domain.GuildMember, 0, len(entry.Members))
	for _, member := range entry.Members {
		members = append(members, domain.GuildMember{
			UUID:   member.UUID,
			Rank:   member.Rank,
			Joined: member.Joined,
		})
	}

	ranks := make([]domain.GuildRank, 0, len(entry.Ranks))
	for _, rank := range entry.Ranks {
		ranks = append(ranks, domain.GuildRank{
			Name:     rank.Name,
			Tag:      rank.Tag,
			Priority: rank.Priority,
			Created:  rank.Created,
		})
	}

	return &domain.Guild{
		Name:        entry.Name,
		Tag:         entry.Tag,
		TagColor:    entry.TagColor,
		Description: entry.Description,
		Created:     entry.Created,
		Exp:         entry.Exp,

		Members: members,
		Ranks:   ranks,

		Achievements: domain.GuildAchievements{
			ExperienceKings: entry.Achievements.ExperienceKings,
			Winners:         entry.Achievements.Winners,
			OnlinePlayers:   entry.Achievements.OnlinePlayers,
		},
		ExpByGameType:  entry.GuildExpByGameType,
		PreferredGames: entry.PreferredGames,

		LegacyRanking: entry.LegacyRanking,
	}, nil
}
