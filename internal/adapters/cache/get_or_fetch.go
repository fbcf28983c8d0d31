package cache

import (
	"context"
	"fmt"

	"github.com/shmeado/lantern/internal/logging"
)

// GetOrFetch returns the cached value for key, or claims the key and runs
// fetch to populate it. Callers that arrive while a fetch is in flight wait
// for it to resolve rather than fetching again. A failed fetch releases the
// claim, so a later call may retry; the failure is returned only to the
// caller whose fetch failed.
//
// Returns data, fetched, error.
func GetOrFetch[T any](ctx context.Context, cache Cache[T], key string, fetch func() (T, error)) (T, bool, error) {
	// Clean up the cache if we claim an entry, but don't set it
	// This allows other callers to try again
	claimed := false
	set := false
	defer func() {
		if claimed && !set {
			cache.delete(key)
		}
	}()

	for {
		result := cache.getOrClaim(key)

		if result.claimed {
			claimed = true

			logging.FromContext(ctx).InfoContext(ctx, "Loading resource", "resource", key, "cache", "miss")

			data, err := fetch()
			if err != nil {
				var empty T
				return empty, false, fmt.Errorf("failed to fetch %q: %w", key, err)
			}

			cache.set(key, data)
			set = true

			return data, true, nil
		}

		if result.valid {
			logging.FromContext(ctx).InfoContext(ctx, "Loading resource", "resource", key, "cache", "hit")
			return result.data, false, nil
		}

		logging.FromContext(ctx).InfoContext(ctx, "Waiting for in-flight fetch", "resource", key)
		cache.wait()
	}
}
