package domain

type Reward struct {
	Type   string
	Amount int
}

type Quest struct {
	ID          string
	Name        string
	Description string
	Rewards     []Reward
}

// QuestIndex maps mode keys to the quest definitions belonging to that mode.
type QuestIndex map[string][]Quest

type Challenge struct {
	ID      string
	Name    string
	Rewards []Reward
}

// ChallengeIndex maps mode keys to the challenge definitions belonging to
// that mode.
type ChallengeIndex map[string][]Challenge
