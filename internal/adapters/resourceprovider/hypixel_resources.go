package resourceprovider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shmeado/lantern/internal/constants"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/reporting"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type hypixelResourcesMetricsCollection struct {
	requestCount metric.Int64Counter
}

func setupHypixelResourcesMetrics(meter metric.Meter) (hypixelResourcesMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("resourceprovider/hypixel/request_count")
	if err != nil {
		return hypixelResourcesMetricsCollection{}, fmt.Errorf("failed to create request count metric: %w", err)
	}

	return hypixelResourcesMetricsCollection{
		requestCount: requestCount,
	}, nil
}

type hypixelResources struct {
	httpClient HttpClient

	metrics hypixelResourcesMetricsCollection
	tracer  trace.Tracer
}

// NewHypixelResources returns a ResourceProvider backed by the public
// resource endpoints. The endpoints are unauthenticated and not counted
// against the API key budget.
func NewHypixelResources(httpClient HttpClient) (ResourceProvider, error) {
	const name = "lantern/resourceprovider/hypixel"

	meter := otel.Meter(name)
	tracer := otel.Tracer(name)

	metrics, err := setupHypixelResourcesMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &hypixelResources{
		httpClient: httpClient,

		metrics: metrics,
		tracer:  tracer,
	}, nil
}

func (h *hypixelResources) getResource(ctx context.Context, resourceName string) ([]byte, error) {
	ctx, span := h.tracer.Start(ctx, "HypixelResources.getResource")
	span.SetAttributes(attribute.String("resource", resourceName))
	defer span.End()

	logger := logging.FromContext(ctx)
	url := fmt.Sprintf("https://api.hypixel.net/v2/resources/%s", resourceName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		err := fmt.Errorf("failed to send request: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err := fmt.Errorf("failed to read response body: %w", err)
		reporting.Report(ctx, err)
		return nil, err
	}
	logger.Info("hypixel resource request completed", "url", url, "status", resp.StatusCode, "duration", time.Since(start).String())

	h.metrics.requestCount.Add(
		ctx,
		1,
		metric.WithAttributes(
			attribute.String("resource", resourceName),
			attribute.String("status_code", strconv.Itoa(resp.StatusCode)),
		),
	)

	if err := checkForResourceError(resp.StatusCode, data); err != nil {
		reporting.Report(ctx, err, map[string]string{
			"resource": resourceName,
			"status":   strconv.Itoa(resp.StatusCode),
			"data":     string(data),
		})
		return nil, err
	}

	return data, nil
}

func checkForResourceError(statusCode int, data []byte) error {
	if statusCode == 200 {
		if len(data) > 0 && data[0] == '<' {
			return fmt.Errorf("resource API returned HTML (%w)", domain.ErrTemporarilyUnavailable)
		}
		return nil
	}

	switch statusCode {
	case 429:
		return fmt.Errorf("resource API ratelimit exceeded (%w)", domain.ErrTemporarilyUnavailable)
	case 500, 502, 503, 504, 520, 521, 522, 523, 524, 525, 526, 527, 530:
		return fmt.Errorf("resource API returned status code %d (%s) (%w)", statusCode, http.StatusText(statusCode), domain.ErrTemporarilyUnavailable)
	}

	return fmt.Errorf("resource API returned unsupported status code: %d", statusCode)
}

func (h *hypixelResources) GetQuests(ctx context.Context) (domain.QuestIndex, error) {
	data, err := h.getResource(ctx, "quests")
	if err != nil {
		return nil, fmt.Errorf("failed to get quests resource: %w", err)
	}

	index, err := questIndexFromResponse(data)
	if err != nil {
		err := fmt.Errorf("failed to parse quests resource: %w", err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}
	return index, nil
}

func (h *hypixelResources) GetChallenges(ctx context.Context) (domain.ChallengeIndex, error) {
	data, err := h.getResource(ctx, "challenges")
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges resource: %w", err)
	}

	index, err := challengeIndexFromResponse(data)
	if err != nil {
		err := fmt.Errorf("failed to parse challenges resource: %w", err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}
	return index, nil
}

func (h *hypixelResources) GetAchievements(ctx context.Context) (domain.AchievementIndex, error) {
	data, err := h.getResource(ctx, "achievements")
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements resource: %w", err)
	}

	index, err := achievementIndexFromResponse(data)
	if err != nil {
		err := fmt.Errorf("failed to parse achievements resource: %w", err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}
	return index, nil
}

func (h *hypixelResources) GetGames(ctx context.Context) (domain.GameInfoTable, error) {
	data, err := h.getResource(ctx, "games")
	if err != nil {
		return nil, fmt.Errorf("failed to get games resource: %w", err)
	}

	table, err := gameInfoTableFromResponse(data)
	if err != nil {
		err := fmt.Errorf("failed to parse games resource: %w", err)
		reporting.Report(ctx, err, map[string]string{"data": string(data)})
		return nil, err
	}
	return table, nil
}
