package domain

import "time"

// Supporter is a Patreon supporter of the site.
type Supporter struct {
	UUID   string
	Tier   int
	Emoji  string
	Bio    string
	Joined time.Time
}
