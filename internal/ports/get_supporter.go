package ports

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
)

type supporterJSON struct {
	UUID   string `json:"uuid"`
	Tier   int    `json:"tier"`
	Emoji  string `json:"emoji,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Joined int64  `json:"joined"`
}

type supporterResponse struct {
	Success   bool           `json:"success"`
	Supporter *supporterJSON `json:"supporter,omitempty"`
	Cause     string         `json:"cause,omitempty"`
}

func MakeGetSupporterHandler(
	getSupporter app.GetSupporter,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildStandardMiddleware("getsupporter", allowedOrigins, rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		handleError := func(ctx context.Context, cause string, statusCode int) {
			writeJSON(ctx, w, statusCode, supporterResponse{Success: false, Cause: cause})
		}

		ctx, uuid, err := decorateUUIDRequest(ctx, r)
		if err != nil {
			handleError(ctx, "invalid uuid", http.StatusBadRequest)
			return
		}

		supporter, err := getSupporter(ctx, uuid)
		if errors.Is(err, domain.ErrNotASupporter) {
			handleError(ctx, "not a supporter", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrTemporarilyUnavailable) {
			handleError(ctx, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			// NOTE: GetSupporter implementations handle their own error reporting
			handleError(ctx, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(ctx, w, http.StatusOK, supporterResponse{
			Success: true,
			Supporter: &supporterJSON{
				UUID:   supporter.UUID,
				Tier:   supporter.Tier,
				Emoji:  supporter.Emoji,
				Bio:    supporter.Bio,
				Joined: supporter.Joined.UnixMilli(),
			},
		})
	}

	return middleware(handler)
}
