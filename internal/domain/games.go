package domain

import "strings"

// GameInfo describes a single game type as published by the games resource.
type GameInfo struct {
	Name         string
	DatabaseName string
	// ModeNames translates internal mode codes (e.g. "BEDWARS_EIGHT_TWO") to
	// display names
	ModeNames map[string]string
}

// GameInfoTable maps game type keys (e.g. "BEDWARS") to their game info.
// It is the shared translation table used by every aggregator.
type GameInfoTable map[string]GameInfo

// Name returns the display name for a game type, falling back to the raw key.
func (t GameInfoTable) Name(gameType string) string {
	if info, ok := t[gameType]; ok && info.Name != "" {
		return info.Name
	}
	return gameType
}

// ModeName returns the display name for a mode code within a game type.
// Unknown modes yield an empty string, matching the resource contract.
func (t GameInfoTable) ModeName(gameType, mode string) string {
	info, ok := t[gameType]
	if !ok {
		return ""
	}
	return info.ModeNames[mode]
}

// NameByDatabaseName translates the lower-cased database names used as mode
// keys by the quests, challenges and achievements resources. Falls back to
// the raw key.
func (t GameInfoTable) NameByDatabaseName(databaseName string) string {
	for _, info := range t {
		if strings.EqualFold(info.DatabaseName, databaseName) && info.Name != "" {
			return info.Name
		}
	}
	return databaseName
}
