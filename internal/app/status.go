package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/adapters/statusprovider"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
)

type GetStatus func(ctx context.Context, uuid string) (domain.OnlineSession, error)

type GetRecentGames func(ctx context.Context, uuid string) ([]domain.RecentGame, error)

type GetGuild func(ctx context.Context, uuid string) (*domain.Guild, error)

func checkUUID(ctx context.Context, uuid string) error {
	if !strutils.UUIDIsNormalized(uuid) {
		err := fmt.Errorf("UUID is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"uuid": uuid,
		})
		return err
	}
	return nil
}

func BuildGetStatusWithCache(
	statusCache cache.Cache[domain.OnlineSession],
	provider statusprovider.StatusProvider,
) GetStatus {
	return func(ctx context.Context, uuid string) (domain.OnlineSession, error) {
		if err := checkUUID(ctx, uuid); err != nil {
			return domain.OnlineSession{}, err
		}

		session, _, err := cache.GetOrFetch(ctx, statusCache, uuid, func() (domain.OnlineSession, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.GetStatus(fetchCtx, uuid)
		})
		if err != nil {
			// NOTE: StatusProvider implementations handle their own error reporting
			return domain.OnlineSession{}, fmt.Errorf("failed to load status: %w", err)
		}
		return session, nil
	}
}

func BuildGetRecentGamesWithCache(
	recentGamesCache cache.Cache[[]domain.RecentGame],
	provider statusprovider.StatusProvider,
) GetRecentGames {
	return func(ctx context.Context, uuid string) ([]domain.RecentGame, error) {
		if err := checkUUID(ctx, uuid); err != nil {
			return nil, err
		}

		games, _, err := cache.GetOrFetch(ctx, recentGamesCache, uuid, func() ([]domain.RecentGame, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.GetRecentGames(fetchCtx, uuid)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load recent games: %w", err)
		}
		return games, nil
	}
}

func BuildGetGuildWithCache(
	guildCache cache.Cache[*domain.Guild],
	provider statusprovider.StatusProvider,
) GetGuild {
	return func(ctx context.Context, uuid string) (*domain.Guild, error) {
		if err := checkUUID(ctx, uuid); err != nil {
			return nil, err
		}

		guild, _, err := cache.GetOrFetch(ctx, guildCache, uuid, func() (*domain.Guild, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.GetGuild(fetchCtx, uuid)
		})
		if err != nil {
			// Pass through ErrNotInGuild to the caller
			return nil, fmt.Errorf("failed to load guild: %w", err)
		}
		return guild, nil
	}
}
