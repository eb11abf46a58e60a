package respond

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"Beamcalc/internal/logging"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusUnprocessableEntity, map[string]string{"status": "error_input"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"error_input"}`, rec.Body.String())
}

func TestJSONUnencodableValue(t *testing.T) {
	prev := logging.Logger
	t.Cleanup(func() { logging.Use(prev) })
	core, logs := observer.New(zap.ErrorLevel)
	logging.Use(zap.New(core))

	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]float64{"md": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Header().Get("Content-Type"), "application/json")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "encode response", logs.All()[0].Message)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, Status(false))
	assert.Equal(t, http.StatusUnprocessableEntity, Status(true))
}
