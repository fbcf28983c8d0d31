package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/adapters/resourceprovider"
	"github.com/shmeado/lantern/internal/domain"
)

// Resource definitions are fetched at most once per dashboard session and
// shared by every aggregator. The caches deduplicate overlapping callers so
// two tabs requesting the same resource before the first fetch resolves join
// a single network request.

type GetQuestIndex func(ctx context.Context) (domain.QuestIndex, error)

type GetChallengeIndex func(ctx context.Context) (domain.ChallengeIndex, error)

type GetAchievementIndex func(ctx context.Context) (domain.AchievementIndex, error)

type GetGameInfoTable func(ctx context.Context) (domain.GameInfoTable, error)

const resourceFetchTimeout = 10 * time.Second

func BuildGetQuestIndexWithCache(
	questCache cache.Cache[domain.QuestIndex],
	provider resourceprovider.ResourceProvider,
) GetQuestIndex {
	return func(ctx context.Context) (domain.QuestIndex, error) {
		index, _, err := cache.GetOrFetch(ctx, questCache, "quests", func() (domain.QuestIndex, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, resourceFetchTimeout)
			defer cancel()
			return provider.GetQuests(fetchCtx)
		})
		if err != nil {
			// NOTE: ResourceProvider implementations handle their own error reporting
			return nil, fmt.Errorf("failed to load quest definitions: %w", err)
		}
		return index, nil
	}
}

func BuildGetChallengeIndexWithCache(
	challengeCache cache.Cache[domain.ChallengeIndex],
	provider resourceprovider.ResourceProvider,
) GetChallengeIndex {
	return func(ctx context.Context) (domain.ChallengeIndex, error) {
		index, _, err := cache.GetOrFetch(ctx, challengeCache, "challenges", func() (domain.ChallengeIndex, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, resourceFetchTimeout)
			defer cancel()
			return provider.GetChallenges(fetchCtx)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load challenge definitions: %w", err)
		}
		return index, nil
	}
}

func BuildGetAchievementIndexWithCache(
	achievementCache cache.Cache[domain.AchievementIndex],
	provider resourceprovider.ResourceProvider,
) GetAchievementIndex {
	return func(ctx context.Context) (domain.AchievementIndex, error) {
		index, _, err := cache.GetOrFetch(ctx, achievementCache, "achievements", func() (domain.AchievementIndex, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, resourceFetchTimeout)
			defer cancel()
			return provider.GetAchievements(fetchCtx)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load achievement definitions: %w", err)
		}
		return index, nil
	}
}

// BuildGetGameInfoTableWithCache builds the loader for the shared games
// table. Several aggregators depend on it lazily; the first caller triggers
// the fetch and later callers reuse the cached value.
func BuildGetGameInfoTableWithCache(
	gamesCache cache.Cache[domain.GameInfoTable],
	provider resourceprovider.ResourceProvider,
) GetGameInfoTable {
	return func(ctx context.Context) (domain.GameInfoTable, error) {
		table, _, err := cache.GetOrFetch(ctx, gamesCache, "games", func() (domain.GameInfoTable, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, resourceFetchTimeout)
			defer cancel()
			return provider.GetGames(fetchCtx)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load game info: %w", err)
		}
		return table, nil
	}
}
