package domain

// OnlineSession is the player's current session as reported by the status
// endpoint.
type OnlineSession struct {
	Online   bool
	GameType string
	Mode     string
	// Empty when the session does not expose a map
	Map string
}

// RecentGame is a single entry from the recent games endpoint.
type RecentGame struct {
	// Unix millis
	Date     int64
	GameType string
	Mode     string
	Map      string
	// Zero while the game is still ongoing
	Ended int64
}
