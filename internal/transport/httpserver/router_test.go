package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity-app-go/internal/config"
	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
	"charity-app-go/internal/domain/existence"
	"charity-app-go/internal/domain/family"
	"charity-app-go/internal/domain/health"
	"charity-app-go/internal/domain/needs"
	"charity-app-go/internal/domain/report"
	"charity-app-go/internal/repository/inmemory"
	"charity-app-go/internal/transport/httpserver/handler"
	"charity-app-go/internal/transport/httpserver/handler/care"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
	"charity-app-go/internal/transport/httpserver/handler/donors"
	"charity-app-go/internal/transport/httpserver/handler/families"
	"charity-app-go/internal/transport/httpserver/handler/reports"
	"charity-app-go/internal/transport/httpserver/middleware"
	"charity-app-go/pkg/logger"
)

type pinger struct {
	err error
}

func (p pinger) PingContext(context.Context) error {
	return p.err
}

type testServer struct {
	router   http.Handler
	store    *inmemory.Store
	registry *prometheus.Registry
}

func newTestServer(t *testing.T, ping pinger) *testServer {
	t.Helper()

	store := inmemory.NewStore()
	log := logger.Nop()
	chain := existence.NewValidator(store.Existence())

	familyService := family.NewService(store.Families(), chain)
	donorService := donor.NewService(store.Donors())
	donationService := donation.NewService(store.Donations(), chain)

	handlers := handler.New(
		commonhandler.New(ping, log),
		families.New(familyService, log),
		care.New(health.NewService(store.Health(), chain), needs.NewService(store.Needs(), chain), log),
		donors.New(donorService, donationService, log),
		reports.New(report.NewService(familyService, donorService, donationService), log),
	)

	reg := prometheus.NewRegistry()
	cfg := config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
	return &testServer{
		router:   NewRouter(cfg, handlers, middleware.NewMetrics(reg), reg),
		store:    store,
		registry: reg,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func object(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	value, ok := body[key].(map[string]any)
	require.Truef(t, ok, "missing %q in %v", key, body)
	return value
}

func id(t *testing.T, entity map[string]any) int {
	t.Helper()
	value, ok := entity["id"].(float64)
	require.True(t, ok)
	return int(value)
}

func TestHealth(t *testing.T) {
	rec, body := newTestServer(t, pinger{}).do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	rec, body = newTestServer(t, pinger{err: errors.New("down")}).do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, pinger{})

	req := httptest.NewRequest(http.MethodOptions, "/api/family", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestMetricsUseRoutePatterns(t *testing.T) {
	srv := newTestServer(t, pinger{})
	srv.do(t, http.MethodGet, "/api/family/41", nil)

	rec, _ := srv.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `charity_http_requests_total{method="GET",route="/api/family/{familyID}",status="404"} 1`)
}
