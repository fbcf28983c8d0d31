package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shmeado/lantern/internal/domain"
)

type GetSupporter func(ctx context.Context, uuid string) (domain.Supporter, error)

type supporterRepository interface {
	GetSupporter(ctx context.Context, uuid string) (domain.Supporter, error)
}

func BuildGetSupporter(repo supporterRepository) GetSupporter {
	return func(ctx context.Context, uuid string) (domain.Supporter, error) {
		if err := checkUUID(ctx, uuid); err != nil {
			return domain.Supporter{}, err
		}

		getCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		supporter, err := repo.GetSupporter(getCtx, uuid)
		if err != nil {
			// NOTE: supporterRepository implementations handle their own error reporting
			// Pass through domain.ErrNotASupporter to the caller
			return domain.Supporter{}, fmt.Errorf("failed to get supporter: %w", err)
		}

		return supporter, nil
	}
}
