package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "golang.org/x/crypto/x509roots/fallback"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/adapters/database"
	"github.com/shmeado/lantern/internal/adapters/statusprovider"
	"github.com/shmeado/lantern/internal/adapters/supporterrepository"
	"github.com/shmeado/lantern/internal/adapters/uuidprovider"
	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/config"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/ports"
	"github.com/shmeado/lantern/internal/ratelimiting"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/telemetry"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "lanterndash.com"
const STAGING_DOMAIN_SUFFIX = "lantern-dash.pages.dev"

func main() {
	// Populates the environment from .env in development; absent in prod
	_ = godotenv.Load()

	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	ctx := context.Background()
	shutdownOTel, err := telemetry.SetupOTelSDK(ctx, "lantern")
	if err != nil {
		fail("Failed to initialize OpenTelemetry", "error", err.Error())
	}
	defer func() {
		if err := shutdownOTel(ctx); err != nil {
			logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
		}
	}()

	uuidCache := cache.NewTTLCache[string](24 * time.Hour)
	statusCache := cache.NewTTLCache[domain.OnlineSession](1 * time.Minute)
	recentGamesCache := cache.NewTTLCache[[]domain.RecentGame](1 * time.Minute)
	guildCache := cache.NewTTLCache[*domain.Guild](5 * time.Minute)

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	// The player and status endpoints share the same upstream api key
	keyBudget := ratelimiting.NewKeyBudgetLimiter(120, 5*time.Minute, time.Now, time.After)

	statusProvider, err := statusprovider.NewHypixelStatus(httpClient, keyBudget, config.HypixelAPIKey())
	if err != nil {
		fail("Failed to initialize status provider", "error", err.Error())
	}
	logger.Info("Initialized status provider")

	uuidProvider := uuidprovider.NewMojangUUIDProvider(httpClient)

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	logger.Info("Initializing database connection")
	db, err := database.NewConfiguredPostgresDatabase(config)
	if err != nil {
		fail("Failed to initialize database connection", "error", err.Error())
	}
	logger.Info("Initialized database connection")

	schemaName := database.GetSchemaName(!config.IsProduction())

	err = database.NewDatabaseMigrator(db, logger.With("component", "migrator")).Migrate(ctx, schemaName)
	if err != nil {
		fail("Failed to migrate database", "error", err.Error())
	}

	supporterRepo := supporterrepository.NewPostgres(db, schemaName)
	logger.Info("Initialized supporter repository")

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	getUUID := app.BuildGetUUIDWithCache(uuidCache, uuidProvider)
	getStatus := app.BuildGetStatusWithCache(statusCache, statusProvider)
	getRecentGames := app.BuildGetRecentGamesWithCache(recentGamesCache, statusProvider)
	getGuild := app.BuildGetGuildWithCache(guildCache, statusProvider)
	getSupporter := app.BuildGetSupporter(supporterRepo)

	http.HandleFunc(
		"OPTIONS /v1/uuid/{username}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /v1/uuid/{username}",
		ports.MakeGetUUIDHandler(
			getUUID,
			allowedOrigins,
			logger.With("port", "getuuid"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /v1/status/{uuid}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /v1/status/{uuid}",
		ports.MakeGetStatusHandler(
			getStatus,
			allowedOrigins,
			logger.With("port", "getstatus"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /v1/recentgames/{uuid}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /v1/recentgames/{uuid}",
		ports.MakeGetRecentGamesHandler(
			getRecentGames,
			allowedOrigins,
			logger.With("port", "getrecentgames"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /v1/guild/{uuid}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /v1/guild/{uuid}",
		ports.MakeGetGuildHandler(
			getGuild,
			allowedOrigins,
			logger.With("port", "getguild"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"OPTIONS /v1/supporter/{uuid}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	http.HandleFunc(
		"GET /v1/supporter/{uuid}",
		ports.MakeGetSupporterHandler(
			getSupporter,
			allowedOrigins,
			logger.With("port", "getsupporter"),
			sentryMiddleware,
		),
	)

	handler := otelhttp.NewHandler(http.DefaultServeMux, "lantern")

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), handler)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
