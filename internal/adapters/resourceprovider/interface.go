package resourceprovider

import (
	"context"

	"github.com/shmeado/lantern/internal/domain"
)

// ResourceProvider fetches the static definition payloads published by the
// Hypixel resource API. Definitions only change on game updates, so callers
// are expected to cache the results for the lifetime of a dashboard session.
//
// All methods raise domain.ErrTemporarilyUnavailable for errors believed to
// be intermittent. The call may be retried later.
type ResourceProvider interface {
	GetQuests(ctx context.Context) (domain.QuestIndex, error)
	GetChallenges(ctx context.Context) (domain.ChallengeIndex, error)
	GetAchievements(ctx context.Context) (domain.AchievementIndex, error)
	GetGames(ctx context.Context) (domain.GameInfoTable, error)
}
