package ports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/logging"
	"github.com/shmeado/lantern/internal/reporting"
)

type uuidResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
	UUID     string `json:"uuid,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

func MakeGetUUIDHandler(
	getUUID app.GetUUID,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildStandardMiddleware("getuuid", allowedOrigins, rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := r.PathValue("username")

		handleError := func(ctx context.Context, cause string, statusCode int) {
			writeJSON(ctx, w, statusCode, uuidResponse{Success: false, Cause: cause})
		}

		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			userID = "<missing>"
		}
		ctx = logging.AddMetaToContext(ctx,
			slog.String("userId", userID),
			slog.String("username", username),
		)
		ctx = reporting.AddExtrasToContext(ctx,
			map[string]string{
				"username": username,
			},
		)

		usernameLength := len(username)
		if usernameLength == 0 || usernameLength > 100 {
			handleError(ctx, "invalid username length", http.StatusBadRequest)
			return
		}

		uuid, err := getUUID(ctx, username)
		if errors.Is(err, domain.ErrUsernameNotFound) {
			handleError(ctx, "not found", http.StatusNotFound)
			return
		} else if errors.Is(err, domain.ErrTemporarilyUnavailable) {
			handleError(ctx, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}

		if err != nil {
			// NOTE: GetUUID implementations handle their own error reporting
			handleError(ctx, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx = reporting.SetPlayerUUIDInContext(ctx, uuid)

		writeJSON(ctx, w, http.StatusOK, uuidResponse{
			Success:  true,
			Username: username,
			UUID:     uuid,
		})
	}

	return middleware(handler)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, response any) {
	data, err := json.Marshal(response)
	if err != nil {
		reporting.Report(ctx, fmt.Errorf("failed to marshal response: %w", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"cause":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}
