package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"Beamcalc/internal/auth"
	"Beamcalc/internal/config"
	"Beamcalc/internal/logging"
)

const flexureBody = `{"bw_cm":20,"h_cm":50,"fck_mpa":25,"fyk_mpa":500,"mk_tf_m":8,"cover_cm":3,"d_prime_cm":4}`

func testConfig() config.Config {
	cfg := config.Default()
	cfg.RateLimit = config.RateLimit{RPS: 1000, Burst: 1000}
	return cfg
}

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	prev := logging.Logger
	t.Cleanup(func() { logging.Use(prev) })
	core, logs := observer.New(zapcore.DebugLevel)
	logging.Use(zap.New(core))
	return logs
}

func do(h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndVersion(t *testing.T) {
	h := New(testConfig(), "1.2.3").Router()

	rec := do(h, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/api/version", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3"}`, rec.Body.String())
}

func TestCalcRoutes(t *testing.T) {
	h := New(testConfig(), "dev").Router()

	tests := []struct {
		path string
		body string
	}{
		{"/api/tools/flexure/calc", flexureBody},
		{"/api/tools/shear/calc", `{"bw_cm":20,"h_cm":50,"fck_mpa":25,"fyk_mpa":500,"vk_tf":10,"cover_cm":3,"stirrup_diameter_mm":5,"legs":2}`},
		{"/api/tools/anchorage/calc", `{"diameter_mm":10,"fck_mpa":30,"bar_type":"CA-50","steel_ratio":"equal","anchorage_type":"straight","bond_condition":"good"}`},
		{"/api/tools/minsteel/calc", `{"bw_cm":20,"h_cm":50,"fck_mpa":25,"fyk_mpa":500,"d_h_ratio":0.9}`},
		{"/api/tools/convert/calc", `{"mode":"longitudinal","diameter_mm":8,"spacing_cm":10,"equivalent_diameter_mm":10}`},
		{"/api/tools/loads/calc", `{"span_m":5,"g_kn_m":10,"q_kn_m":5}`},
		{"/api/tools/recommend/calc", `{"as_required_cm2":6.3}`},
		{"/api/tools/autodesign/calc", `{"bw_cm":20,"h_cm":50,"fck_mpa":25,"fyk_mpa":500,"mk_tf_m":16,"cover_cm":3,"d_prime_cm":4,"max_h_cm":80}`},
		{"/api/tools/batch/calc", `{"project":"p","flexure":[{"label":"V1","bw_cm":20,"h_cm":50,"fck_mpa":25,"fyk_mpa":500,"mk_tf_m":8,"cover_cm":3,"d_prime_cm":4}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(h, http.MethodPost, tt.path, tt.body, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}

	rec := do(h, http.MethodPost, "/api/tools/report/pdf", `{"project":"p","flexure":`+flexureBody+`}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}

func TestNotFoundAndMethod(t *testing.T) {
	h := New(testConfig(), "dev").Router()

	rec := do(h, http.MethodGet, "/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"not found"`)

	rec = do(h, http.MethodGet, "/api/tools/flexure/calc", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	rec := do(New(testConfig(), "dev").Router(), http.MethodOptions, "/api/tools/flexure/calc", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRequestID(t *testing.T) {
	h := New(testConfig(), "dev").Router()

	rec := do(h, http.MethodGet, "/api/health", "", nil)
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	rec = do(h, http.MethodGet, "/api/health", "", map[string]string{requestIDHeader: id})
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	rec = do(h, http.MethodGet, "/api/health", "", map[string]string{requestIDHeader: "<script>"})
	assert.NotEqual(t, "<script>", rec.Header().Get(requestIDHeader))
}

func TestRequestLogging(t *testing.T) {
	logs := observe(t)
	h := New(testConfig(), "dev").Router()

	id := uuid.NewString()
	do(h, http.MethodPost, "/api/tools/flexure/calc", flexureBody, map[string]string{requestIDHeader: id})

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/tools/flexure/calc", fields["path"])
	assert.Equal(t, id, fields["request_id"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestAuthEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenKey = "secret"
	h := New(cfg, "dev").Router()

	rec := do(h, http.MethodPost, "/api/tools/flexure/calc", flexureBody, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	token, _, err := auth.New(cfg.Auth).Issue("office")
	require.NoError(t, err)
	rec = do(h, http.MethodPost, "/api/tools/flexure/calc", flexureBody, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimit{RPS: 0.001, Burst: 1}
	h := New(cfg, "dev").Router()

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/health", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/health", "", nil).Code)
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 16
	rec := do(New(cfg, "dev").Router(), http.MethodPost, "/api/tools/flexure/calc", flexureBody, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecoverPanics(t *testing.T) {
	observe(t)
	h := recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }))
	rec := do(h, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, false, out["success"])
}

func TestRunStopsOnCancel(t *testing.T) {
	observe(t)
	cfg := testConfig()
	cfg.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(cfg, "dev").Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunReportsListenError(t *testing.T) {
	observe(t)
	cfg := testConfig()
	cfg.Server.Addr = "not-an-address"

	err := New(cfg, "dev").Run(context.Background())
	assert.Error(t, err)
}
