package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shmeado/lantern/internal/domain"
)

// GuildExpRow is one game's share of the guild's experience.
type GuildExpRow struct {
	Game  string
	Title string
	Exp   int64
	// Two decimal percentage of the guild's game experience, e.g. "30.00%"
	Share string
}

// GuildRankRow is one guild rank in the rank table.
type GuildRankRow struct {
	Name string
	// "None" when the rank has no tag
	Tag      string
	TagColor string
	Created  string
}

// GuildView is the display-ready guild summary.
type GuildView struct {
	Name string
	// Bracketed tag like "[LAMP]", empty when the guild has no tag
	Tag      string
	TagColor string
	// "None" when the guild has no description
	Description string

	Members    int
	Created    string
	CreatedAgo string

	// Guild level with two decimals of progress, e.g. "14.50"
	Level      string
	Experience int64
	// "#312" style, "N/A" when the guild never placed
	LegacyRanking string

	ExperienceKings int
	Winners         int
	OnlinePlayers   int

	// Comma separated display names, "None" when unset
	PreferredGames string

	// Descending experience
	ExpRows []GuildExpRow
	// Descending priority
	Ranks []GuildRankRow
}

// AggregateGuild computes the guild view-model from the raw guild payload
// and the shared games table.
func AggregateGuild(guild *domain.Guild, games domain.GameInfoTable, now time.Time) GuildView {
	tagColor := guild.TagColor
	if tagColor == "" {
		tagColor = "GRAY"
	}
	tagColor = domain.SnakeToCamel(tagColor)

	view := GuildView{
		Name:     guild.Name,
		TagColor: tagColor,

		Members:    len(guild.Members),
		Created:    domain.FormatTimestamp(guild.Created),
		CreatedAgo: domain.FormatDuration(now.Sub(time.UnixMilli(guild.Created)), " ago"),

		Level:         domain.GuildExpToLevel(guild.Exp),
		Experience:    guild.Exp,
		LegacyRanking: "N/A",

		ExperienceKings: guild.Achievements.ExperienceKings,
		Winners:         guild.Achievements.Winners,
		OnlinePlayers:   guild.Achievements.OnlinePlayers,

		Description:    "None",
		PreferredGames: "None",
	}

	if guild.Tag != "" {
		view.Tag = fmt.Sprintf("[%s]", guild.Tag)
	}
	if guild.Description != "" {
		view.Description = guild.Description
	}
	if guild.LegacyRanking != nil {
		view.LegacyRanking = fmt.Sprintf("#%d", *guild.LegacyRanking)
	}

	if len(guild.PreferredGames) > 0 {
		names := make([]string, 0, len(guild.PreferredGames))
		for _, game := range guild.PreferredGames {
			names = append(names, games.Name(game))
		}
		view.PreferredGames = strings.Join(names, ", ")
	}

	var totalGameExp int64
	for _, exp := range guild.ExpByGameType {
		totalGameExp += exp
	}

	gameTypes := make([]string, 0, len(guild.ExpByGameType))
	for game := range guild.ExpByGameType {
		gameTypes = append(gameTypes, game)
	}
	sort.Strings(gameTypes)

	for _, game := range gameTypes {
		exp := guild.ExpByGameType[game]
		share := "0.00%"
		if totalGameExp > 0 {
			share = fmt.Sprintf("%.2f%%", float64(exp)/float64(totalGameExp)*100)
		}
		view.ExpRows = append(view.ExpRows, GuildExpRow{
			Game:  game,
			Title: games.Name(game),
			Exp:   exp,
			Share: share,
		})
	}
	sort.SliceStable(view.ExpRows, func(i, j int) bool {
		return view.ExpRows[i].Exp > view.ExpRows[j].Exp
	})

	ranks := make([]domain.GuildRank, len(guild.Ranks))
	copy(ranks, guild.Ranks)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Priority > ranks[j].Priority
	})

	for _, rank := range ranks {
		row := GuildRankRow{
			Name:     rank.Name,
			Tag:      "None",
			TagColor: tagColor,
			Created:  domain.FormatTimestamp(rank.Created),
		}
		if rank.Tag != "" {
			row.Tag = fmt.Sprintf("[%s]", rank.Tag)
		}
		view.Ranks = append(view.Ranks, row)
	}

	return view
}
