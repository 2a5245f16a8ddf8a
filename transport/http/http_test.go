package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"grandplaza/config"
	otelMocks "grandplaza/infras/otel/mocks"
	cacheMocks "grandplaza/shared/cache/mocks"
	"grandplaza/shared/constant"
	"grandplaza/transport/http/middleware"
	"grandplaza/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment

	m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	return New(cfg, router.New(router.DomainHandlers{}), m)
}

func TestHTTP_Health(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t)
			handler := h.Adaptor()

			h.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
		})
	}
}

func TestHTTP_Adaptor(t *testing.T) {
	h := newTestServer(t)

	assert.Equal(t, ServerState(0), h.State())

	handler := h.Adaptor()
	assert.Equal(t, ServerStateReady, h.State())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
