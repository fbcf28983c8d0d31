package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/adapters/uuidprovider"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
)

type GetUUID func(ctx context.Context, username string) (string, error)

func BuildGetUUIDWithCache(
	uuidCache cache.Cache[string],
	provider uuidprovider.UUIDProvider,
) GetUUID {
	return func(ctx context.Context, username string) (string, error) {
		usernameLength := len(username)
		if usernameLength == 0 || usernameLength > 100 {
			err := fmt.Errorf("invalid username length")
			reporting.Report(ctx, err, map[string]string{
				"username": username,
				"length":   strconv.Itoa(usernameLength),
			})
			return "", err
		}

		uuid, _, err := cache.GetOrFetch(ctx, uuidCache, username, func() (string, error) {
			fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			identity, err := provider.GetUUID(fetchCtx, username)
			if err != nil {
				// NOTE: UUIDProvider implementations handle their own error reporting
				return "", fmt.Errorf("could not get uuid for username: %w", err)
			}

			if !strutils.UUIDIsNormalized(identity.UUID) {
				err := fmt.Errorf("UUID is not normalized")
				reporting.Report(ctx, err, map[string]string{
					"uuid": identity.UUID,
				})
				return "", err
			}

			return identity.UUID, nil
		})
		if err != nil {
			return "", fmt.Errorf("failed to load uuid for username: %w", err)
		}

		return uuid, nil
	}
}
