package ports

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shmeado/lantern/internal/ratelimiting"
	"github.com/stretchr/testify/require"
)

type mockedRateLimiter struct {
	t           *testing.T
	allow       bool
	expectedKey string
}

func (m *mockedRateLimiter) Consume(key string) bool {
	m.t.Helper()
	require.Equal(m.t, m.expectedKey, key)
	return m.allow
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	runTest := func(t *testing.T, allow bool) {
		t.Helper()
		handlerCalled := false
		onLimitExceededCalled := false

		limiter := ratelimiting.NewRequestBasedRateLimiter(
			&mockedRateLimiter{t: t, allow: allow, expectedKey: "ip: 1.2.3.4"},
			ratelimiting.IPKeyFunc,
		)

		middleware := NewRateLimitMiddleware(limiter, func(w http.ResponseWriter, r *http.Request) {
			onLimitExceededCalled = true
		})

		handler := middleware(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		req := httptest.NewRequest("GET", "/v1/status/some-uuid", nil)
		req.RemoteAddr = "1.2.3.4:56789"
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, allow, handlerCalled)
		require.Equal(t, !allow, onLimitExceededCalled)
	}

	t.Run("allowed", func(t *testing.T) {
		t.Parallel()
		runTest(t, true)
	})

	t.Run("limited", func(t *testing.T) {
		t.Parallel()
		runTest(t, false)
	})
}

func TestComposeMiddlewares(t *testing.T) {
	t.Parallel()

	var order []string
	makeMiddleware := func(name string) func(http.HandlerFunc) http.HandlerFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}

	composed := ComposeMiddlewares(
		makeMiddleware("outer"),
		makeMiddleware("middle"),
		makeMiddleware("inner"),
	)

	handler := composed(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	require.Equal(t, []string{"outer", "middle", "inner", "handler"}, order)
}
