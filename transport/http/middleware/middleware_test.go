package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"grandplaza/config"
	otelMocks "grandplaza/infras/otel/mocks"
	"grandplaza/shared"
	"grandplaza/shared/cache"
	cacheMocks "grandplaza/shared/cache/mocks"
	"grandplaza/shared/constant"
	"grandplaza/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*config.Config, *cacheMocks.MockRedisCache, middleware.AppMiddleware) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cacheMock := cacheMocks.NewMockRedisCache(ctrl)

	return cfg, cacheMock, middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMock)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestID(t *testing.T) {
	_, _, m := setup(t)

	var seen string

	handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-42")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestOperator(t *testing.T) {
	_, _, m := setup(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "named operator", header: "  front-desk ", want: "front-desk"},
		{name: "missing header falls back", header: "", want: constant.DefaultOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string

			handler := m.Operator(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = shared.Operator(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPatch, "/v1/workflow/WF001/status", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderOperator, tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		enable    bool
		mock      func(c *cacheMocks.MockRedisCache)
		wantCode  int
		remaining string
	}{
		{
			name:     "disabled",
			enable:   false,
			mock:     func(_ *cacheMocks.MockRedisCache) {},
			wantCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			wantCode:  http.StatusOK,
			remaining: "2",
		},
		{
			name:   "limit exceeded",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
					*value.(*int) = 3

					return nil
				})
			},
			wantCode:  http.StatusTooManyRequests,
			remaining: "0",
		},
		{
			name:   "cache outage lets the request through",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, cacheMock, m := setup(t)
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			tt.mock(cacheMock)

			rec := httptest.NewRecorder()
			m.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestCORS(t *testing.T) {
	cfg, _, m := setup(t)
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://backoffice.grandplaza.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPatch}

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set("Origin", "https://backoffice.grandplaza.com")

	rec := httptest.NewRecorder()
	m.CORS()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

	assert.Equal(t, "https://backoffice.grandplaza.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
