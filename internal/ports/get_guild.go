package ports

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
)

type guildMemberJSON struct {
	UUID   string `json:"uuid"`
	Rank   string `json:"rank,omitempty"`
	Joined int64  `json:"joined,omitempty"`
}

type guildRankJSON struct {
	Name     string `json:"name"`
	Tag      string `json:"tag,omitempty"`
	Priority int    `json:"priority"`
	Created  int64  `json:"created,omitempty"`
}

type guildAchievementsJSON struct {
	ExperienceKings int `json:"experienceKings"`
	Winners         int `json:"winners"`
	OnlinePlayers   int `json:"onlinePlayers"`
}

type guildJSON struct {
	Name        string `json:"name"`
	Tag         string `json:"tag,omitempty"`
	TagColor    string `json:"tagColor,omitempty"`
	Description string `json:"description,omitempty"`
	Created     int64  `json:"created"`
	Exp         int64  `json:"exp"`

	Members []guildMemberJSON `json:"members"`
	Ranks   []guildRankJSON   `json:"ranks"`

	Achievements   guildAchievementsJSON `json:"achievements"`
	ExpByGameType  map[string]int64      `json:"guildExpByGameType"`
	PreferredGames []string              `json:"preferredGames,omitempty"`

	LegacyRanking *int `json:"legacyRanking,omitempty"`
}

type guildResponse struct {
	Success bool       `json:"success"`
	Guild   *guildJSON `json:"guild"`
	Cause   string     `json:"cause,omitempty"`
}

func MakeGetGuildHandler(
	getGuild app.GetGuild,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildStandardMiddleware("getguild", allowedOrigins, rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		handleError := func(ctx context.Context, cause string, statusCode int) {
			writeJSON(ctx, w, statusCode, guildResponse{Success: false, Cause: cause})
		}

		ctx, uuid, err := decorateUUIDRequest(ctx, r)
		if err != nil {
			handleError(ctx, "invalid uuid", http.StatusBadRequest)
			return
		}

		guild, err := getGuild(ctx, uuid)
		if errors.Is(err, domain.ErrNotInGuild) {
			// Matches the upstream shape: a successful lookup with no guild
			writeJSON(ctx, w, http.StatusOK, guildResponse{Success: true, Guild: nil})
			return
		}
		if errors.Is(err, domain.ErrTemporarilyUnavailable) {
			handleError(ctx, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			// NOTE: GetGuild implementations handle their own error reporting
			handleError(ctx, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(ctx, w, http.StatusOK, guildResponse{
			Success: true,
			Guild:   guildToJSON(guild),
		})
	}

	return middleware(handler)
}

func guildToJSON(guild *domain.Guild) *guildJSON {
	out := &guildJSON{
		Name:        guild.Name,
		Tag:         guild.Tag,
		TagColor:    guild.TagColor,
		Description: guild.Description,
		Created:     guild.Created,
		Exp:         guild.Exp,

		Members: make([]guildMemberJSON, 0, len(guild.Members)),
		Ranks:   make([]guildRankJSON, 0, len(guild.Ranks)),

		Achievements: guildAchievementsJSON{
			ExperienceKings: guild.Achievements.ExperienceKings,
			Winners:         guild.Achievements.Winners,
			OnlinePlayers:   guild.Achievements.OnlinePlayers,
		},
		ExpByGameType:  guild.ExpByGameType,
		PreferredGames: guild.PreferredGames,

		LegacyRanking: guild.LegacyRanking,
	}

	for _, member := range guild.Members {
		out.Members = append(out.Members, guildMemberJSON{
			UUID:   member.UUID,
			Rank:   member.Rank,
			Joined: member.Joined,
		})
	}
	for _, rank := range guild.Ranks {
		out.Ranks = append(out.Ranks, guildRankJSON{
			Name:     rank.Name,
			Tag:      rank.Tag,
			Priority: rank.Priority,
			Created:  rank.Created,
		})
	}

	return out
}
