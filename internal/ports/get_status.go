package ports

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/reporting"
	"github.com/shmeado/lantern/internal/strutils"
)

type sessionJSON struct {
	Online   bool   `json:"online"`
	GameType string `json:"gameType,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Map      string `json:"map,omitempty"`
}

type statusResponse struct {
	Success bool         `json:"success"`
	Session *sessionJSON `json:"session,omitempty"`
	Cause   string       `json:"cause,omitempty"`
}

// decorateUUIDRequest normalizes the uuid path value and attaches it, along
// with the user id, to the logging and reporting context.
func decorateUUIDRequest(ctx context.Context, r *http.Request) (context.Context, string, error) {
	rawUUID := r.PathValue("uuid")

	uuid, err := strutils.NormalizeUUID(rawUUID)
	if err != nil {
		return ctx, "", err
	}

	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		userID = "<missing>"
	}

	ctx = logging.AddMetaToContext(ctx,
		slog.String("userId", userID),
		slog.String("uuid", uuid),
	)
	ctx = reporting.SetPlayerUUIDInContext(ctx, uuid)
	ctx = reporting.AddExtrasToContext(ctx,
		map[string]string{
			"uuid": uuid,
		},
	)

	return ctx, uuid, nil
}

func MakeGetStatusHandler(
	getStatus app.GetStatus,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildStandardMiddleware("getstatus", allowedOrigins, rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		handleError := func(ctx context.Context, cause string, statusCode int) {
			writeJSON(ctx, w, statusCode, statusResponse{Success: false, Cause: cause})
		}

		ctx, uuid, err := decorateUUIDRequest(ctx, r)
		if err != nil {
			handleError(ctx, "invalid uuid", http.StatusBadRequest)
			return
		}

		session, err := getStatus(ctx, uuid)
		if errors.Is(err, domain.ErrTemporarilyUnavailable) {
			handleError(ctx, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			// NOTE: GetStatus implementations handle their own error reporting
			handleError(ctx, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(ctx, w, http.StatusOK, statusResponse{
			Success: true,
			Session: &sessionJSON{
				Online:   session.Online,
				GameType: session.GameType,
				Mode:     session.Mode,
				Map:      session.Map,
			},
		})
	}

	return middleware(handler)
}
