package playerprovider

import (
	"context"
	"fmt"

	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type hypixelProgressProvider struct {
	hypixelAPI HypixelAPI

	metrics hypixelProgressProviderMetricsCollection
}

func NewHypixelProgressProvider(hypixelAPI HypixelAPI) (PlayerProgressProvider, error) {
	meter := otel.Meter("lantern/playerprovider/hypixel_provider")
	metrics, err := setupHypixelProgressProviderMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &hypixelProgressProvider{
		hypixelAPI: hypixelAPI,

		metrics: metrics,
	}, nil
}

func (h *hypixelProgressProvider) GetPlayerProgress(ctx context.Context, uuid string) (*domain.PlayerProgress, error) {
	if !strutils.UUIDIsNormalized(uuid) {
		logging.FromContext(ctx).Error("UUID is not normalized", "uuid", uuid)
		err := fmt.Errorf("UUID is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"uuid": uuid,
		})
		return nil, err
	}

	playerData, statusCode, err := h.hypixelAPI.GetPlayerData(ctx, uuid)
	if err != nil {
		// NOTE: HypixelAPI implementations handle their own error reporting
		return nil, fmt.Errorf("failed to get player data: %w", err)
	}

	progress, err := HypixelAPIResponseToPlayerProgress(ctx, uuid, playerData, statusCode)
	if err != nil {
		// NOTE: HypixelAPIResponseToPlayerProgress handles its own error reporting
		return nil, fmt.Errorf("failed to convert hypixel api response to player progress: %w", err)
	}

	h.metrics.requestCount.Add(ctx, 1, metric.WithAttributes(attribute.Bool("got_player", progress != nil)))

	return progress, nil
}

type hypixelProgressProviderMetricsCollection struct {
	requestCount metric.Int64Counter
}

func setupHypixelProgressProviderMetrics(meter metric.Meter) (hypixelProgressProviderMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("playerprovider/hypixel_provider/returned_players")
	if err != nil {
		return hypixelProgressProviderMetricsCollection{}, fmt.Errorf("failed to create metric: %w", err)
	}

	return hypixelProgressProviderMetricsCollection{
		requestCount: requestCount,
	}, nil
}
