package statusprovider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shmeado/lantern/internal/constants"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/ratelimiting"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const maxStatusRequestTime = 5 * time.Second

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type hypixelStatusMetricsCollection struct {
	requestCount metric.Int64Counter
}

func setupHypixelStatusMetrics(meter metric.Meter) (hypixelStatusMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("statusprovider/hypixel/request_count")
	if err != nil {
		return hypixelStatusMetricsCollection{}, fmt.Errorf("failed to create request count metric: %w", err)
	}

	return hypixelStatusMetricsCollection{
		requestCount: requestCount,
	}, nil
}

type hypixelStatus struct {
	httpClient HttpClient
	limiter    ratelimiting.KeyBudgetLimiter
	apiKey     string

	metrics hypixelStatusMetricsCollection
	tracer  trace.Tracer
}

// NewHypixelStatus returns a StatusProvider backed by the keyed Hypixel
// endpoints. Requests share the api key budget with the player provider.
func NewHypixelStatus(httpClient HttpClient, limiter ratelimiting.KeyBudgetLimiter, apiKey string) (StatusProvider, error) {
	const name = "lantern/statusprovider/hypixel"

	meter := otel.Meter(name)
	tracer := otel.Tracer(name)

	metrics, err := setupHypixelStatusMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &hypixelStatus{
		httpClient: httpClient,
		limiter:    limiter,
		apiKey:     apiKey,

		metrics: metrics,
		tracer:  tracer,
	}, nil
}

func (h *hypixelStatus) getKeyed(ctx context.Context, endpoint, param, uuid string) ([]byte, int, error) {
	ctx, span := h.tracer.Start(ctx, "HypixelStatus.getKeyed")
	span.SetAttributes(attribute.String("endpoint", endpoint))
	defer span.End()

	logger := logging.FromContext(ctx)

	if !strutils.UUIDIsNormalized(uuid) {
		err := fmt.Errorf("UUID is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"uuid": uuid,
		})
		return nil, -1, err
	}

	url := fmt.Sprintf("https://api.hypixel.net/v2/%s?%s=%s", endpoint, param, uuid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		reporting.Report(ctx, err)
		return nil, -1, err
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)
	req.Header.Set("API-Key", h.apiKey)

	start := time.Now()

	var resp *http.Response
	var doErr error
	ran := h.limiter.Limit(ctx, maxStatusRequestTime, func(ctx context.Context) {
		resp, doErr = h.httpClient.Do(req)
	})
	if !ran {
		err := fmt.Errorf("request did not fit within the api key budget (%w)", domain.ErrTemporarilyUnavailable)
		logger.Error(err.Error())
		return nil, -1, err
	}
	if doErr != nil {
		err := fmt.Errorf("failed to send request: %w", doErr)
		reporting.Report(ctx, err)
		return nil, -1, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err := fmt.Errorf("failed to read response body: %w", err)
		reporting.Report(ctx, err)
		return nil, -1, err
	}
	logger.Info("hypixel request completed", "url", url, "status", resp.StatusCode, "duration", time.Since(start).String())

	h.metrics.requestCount.Add(
		ctx,
		1,
		metric.WithAttributes(
			attribute.String("endpoint", endpoint),
			attribute.String("status_code", strconv.Itoa(resp.StatusCode)),
		),
	)

	return data, resp.StatusCode, nil
}

func (h *hypixelStatus) GetStatus(ctx context.Context, uuid string) (domain.OnlineSession, error) {
	data, statusCode, err := h.getKeyed(ctx, "status", "uuid", uuid)
	if err != nil {
		return domain.OnlineSession{}, fmt.Errorf("failed to get status: %w", err)
	}

	session, err := sessionFromResponse(statusCode, data)
	if err != nil {
		err := fmt.Errorf("failed to parse status response: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"uuid":   uuid,
			"status": strconv.Itoa(statusCode),
			"data":   string(data),
		})
		return domain.OnlineSession{}, err
	}
	return session, nil
}

func (h *hypixelStatus) GetRecentGames(ctx context.Context, uuid string) ([]domain.RecentGame, error) {
	data, statusCode, err := h.getKeyed(ctx, "recentgames", "uuid", uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent games: %w", err)
	}

	games, err := recentGamesFromResponse(statusCode, data)
	if err != nil {
		err := fmt.Errorf("failed to parse recent games response: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"uuid":   uuid,
			"status": strconv.Itoa(statusCode),
			"data":   string(data),
		})
		return nil, err
	}
	return games, nil
}

func (h *hypixelStatus) GetGuild(ctx context.Context, uuid string) (*domain.Guild, error) {
	// The guild endpoint takes the member uuid under a different param name
	data, statusCode, err := h.getKeyed(ctx, "guild", "player", uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	guild, err := guildFromResponse(statusCode, data)
	if errors.Is(err, domain.ErrNotInGuild) {
		return nil, err
	}
	if err != nil {
		err := fmt.Errorf("failed to parse guild response: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"uuid":   uuid,
			"status": strconv.Itoa(statusCode),
			"data":   string(data),
		})
		return nil, err
	}
	return guild, nil
}
