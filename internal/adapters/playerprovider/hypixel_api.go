package playerprovider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shmeado/lantern/internal/config"
	"github.com/shmeado/lantern/internal/constants"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/ratelimiting"
	"github.com/shmeado/lantern/internal/reporting"
)

// Upper bound on a single upstream request, used when deciding whether a
// budget-limited request can complete before the context deadline.
const maxHypixelRequestTime = 5 * time.Second

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type HypixelAPI interface {
	GetPlayerData(ctx context.Context, uuid string) ([]byte, int, error)
}

type mockedHypixelAPI struct{}

func (hypixelAPI *mockedHypixelAPI) GetPlayerData(ctx context.Context, uuid string) ([]byte, int, error) {
	return []byte(fmt.Sprintf(`{"success":true,"player":{"uuid":"%s"}}`, uuid)), 200, nil
}

type hypixelAPIImpl struct {
	httpClient HttpClient
	limiter    ratelimiting.KeyBudgetLimiter
	apiKey     string
}

func (hypixelAPI hypixelAPIImpl) GetPlayerData(ctx context.Context, uuid string) ([]byte, int, error) {
	logger := logging.FromContext(ctx)
	url := fmt.Sprintf("https://api.hypixel.net/v2/player?uuid=%s", uuid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return []byte{}, -1, err
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)
	req.Header.Set("API-Key", hypixelAPI.apiKey)

	start := time.Now()

	var resp *http.Response
	var doErr error
	ran := hypixelAPI.limiter.Limit(ctx, maxHypixelRequestTime, func(ctx context.Context) {
		resp, doErr = hypixelAPI.httpClient.Do(req)
	})
	if !ran {
		err := fmt.Errorf("request did not fit within the api key budget (%w)", domain.ErrTemporarilyUnavailable)
		logger.Error(err.Error())
		return []byte{}, -1, err
	}
	if doErr != nil {
		err := fmt.Errorf("failed to send request: %w", doErr)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return []byte{}, -1, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err := fmt.Errorf("failed to read response body: %w", err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return []byte{}, -1, err
	}
	logger.Info("hypixel request completed", "url", url, "status", resp.StatusCode, "duration", time.Since(start).String())

	return data, resp.StatusCode, nil
}

func NewHypixelAPI(httpClient HttpClient, limiter ratelimiting.KeyBudgetLimiter, apiKey string) HypixelAPI {
	return hypixelAPIImpl{
		httpClient: httpClient,
		limiter:    limiter,
		apiKey:     apiKey,
	}
}

func NewHypixelAPIOrMock(config config.Config, httpClient HttpClient, limiter ratelimiting.KeyBudgetLimiter) (HypixelAPI, error) {
	if config.HypixelAPIKey() != "" {
		return NewHypixelAPI(httpClient, limiter, config.HypixelAPIKey()), nil
	}
	if config.IsDevelopment() {
		return &mockedHypixelAPI{}, nil
	}
	return nil, fmt.Errorf("missing Hypixel API key in non-development environment")
}
