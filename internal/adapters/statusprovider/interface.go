package statusprovider

import (
	"context"

	"github.com/shmeado/lantern/internal/domain"
)

// StatusProvider serves the keyed player lookups that do not fit the player
// payload: current session, recent games and guild membership.
//
// All methods raise domain.ErrTemporarilyUnavailable for errors believed to
// be intermittent. The call may be retried later.
type StatusProvider interface {
	GetStatus(ctx context.Context, uuid string) (domain.OnlineSession, error)
	GetRecentGames(ctx context.Context, uuid string) ([]domain.RecentGame, error)
	// Raises domain.ErrNotInGuild when the player is not in a guild
	GetGuild(ctx context.Context, uuid string) (*domain.Guild, error)
}
