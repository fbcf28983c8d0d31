package playerprovider

import (
	"context"

	"github.com/shmeado/lantern/internal/domain"
)

type PlayerProgressProvider interface {
	// Raises domain.ErrPlayerNotFound if no player data is found for the given UUID
	//
	// Raises domain.ErrTemporarilyUnavailable if the provider implementation receives an error believed to be intermittent. The call may be retried later.
	GetPlayerProgress(ctx context.Context, uuid string) (*domain.PlayerProgress, error)
}
