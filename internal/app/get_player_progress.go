package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/adapters/playerprovider"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
)

type GetPlayerProgress func(ctx context.Context, uuid string) (*domain.PlayerProgress, error)

func BuildGetPlayerProgressWithCache(
	progressCache cache.Cache[*domain.PlayerProgress],
	provider playerprovider.PlayerProgressProvider,
) GetPlayerProgress {
	return func(ctx context.Context, uuid string) (*domain.PlayerProgress, error) {
		if !strutils.UUIDIsNormalized(uuid) {
			err := fmt.Errorf("UUID is not normalized")
			reporting.Report(ctx, err, map[string]string{
				"uuid": uuid,
			})
			return nil, err
		}

		progress, _, err := cache.GetOrFetch(ctx, progressCache, uuid, func() (*domain.PlayerProgress, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.GetPlayerProgress(fetchCtx, uuid)
		})
		if err != nil {
			// NOTE: PlayerProgressProvider implementations handle their own error reporting
			return nil, fmt.Errorf("failed to load player progress: %w", err)
		}

		return progress, nil
	}
}
