package domain

import "fmt"

type GuildMember struct {
	UUID   string
	Rank   string
	Joined int64
}

type GuildRank struct {
	Name     string
	Tag      string
	Priority int
	// Unix millis
	Created int64
}

type GuildAchievements struct {
	ExperienceKings int
	Winners         int
	OnlinePlayers   int
}

type Guild struct {
	Name        string
	Tag         string
	TagColor    string
	Description string
	// Unix millis
	Created int64
	Exp     int64

	Members []GuildMember
	Ranks   []GuildRank

	Achievements   GuildAchievements
	ExpByGameType  map[string]int64
	PreferredGames []string

	// nil when the guild never placed on the legacy leaderboard
	LegacyRanking *int
}

// Experience required to complete each guild level (not cumulative)
var guildLevelRequirements = []int64{
	100000,
	150000,
	250000,
	500000,
	750000,
	1000000,
	1250000,
	1500000,
	2000000,
	2500000,
	2500000,
	2500000,
	2500000,
	2500000,
}

// Every level past the table costs a flat amount
const guildLevelFlatRequirement int64 = 3000000

// GuildExpToLevel converts total guild experience to a guild level with two
// decimals of fractional progress within the current level band.
func GuildExpToLevel(exp int64) string {
	level := 0
	remaining := exp

	for _, required := range guildLevelRequirements {
		if remaining < required {
			return fmt.Sprintf("%.2f", float64(level)+float64(remaining)/float64(required))
		}
		remaining -= required
		level++
	}

	for remaining >= guildLevelFlatRequirement {
		remaining -= guildLevelFlatRequirement
		level++
	}

	return fmt.Sprintf("%.2f", float64(level)+float64(remaining)/float64(guildLevelFlatRequirement))
}
