package autodesign

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/errors"
)

func beam(h, mk float64) flexure.Input {
	return flexure.Input{BwCM: 20, HCM: h, FckMPa: 25, FykMPa: 500, MkTfM: mk, CoverCM: 3, DPrimeCM: 4}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name  string
		in    flexure.Input
		h     float64
		tried int
	}{
		{"already passes", beam(50, 8), 50, 1},
		{"ductility limit", beam(50, 16), 55, 2},
		{"negative discriminant first", beam(50, 30), 75, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Height(tt.in, 5, 100)
			require.NoError(t, err)
			assert.Equal(t, tt.h, res.HCM)
			assert.Equal(t, tt.tried, res.Tried)
			assert.False(t, res.Flexure.Status.Failed())
			assert.Nil(t, res.Flexure.Compression)
		})
	}
}

func TestHeightAcceptsMinimumSteel(t *testing.T) {
	res, err := Height(beam(50, 2), 5, 60)
	require.NoError(t, err)
	assert.Equal(t, flexure.StatusWarningMinSteel, res.Flexure.Status)
	assert.Equal(t, 50.0, res.HCM)
}

func TestHeightDefaults(t *testing.T) {
	res, err := Height(beam(0, 16), 0, 60)
	require.NoError(t, err)
	assert.Equal(t, 55.0, res.HCM)
	assert.Equal(t, 11, res.Tried)
}

func TestHeightNotFound(t *testing.T) {
	_, err := Height(beam(50, 30), 5, 70)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "70.0")
}

func TestHeightBoundsTheSearch(t *testing.T) {
	_, err := Height(beam(50, 1e9), 1e-4, 1e7)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "1000 tries")

	res, err := Height(beam(50, 8), 1, 1049)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.HCM)

	_, err = Height(beam(50, 8), 1, 1050)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	in := beam(0, 8)
	in.CoverCM = 1e6
	_, err = Height(in, 1e-3, 1e7)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "effective depth")
}

func TestHeightInvalid(t *testing.T) {
	_, err := Height(beam(50, 8), -5, 100)
	assert.Error(t, err)

	_, err = Height(beam(120, 8), 5, 100)
	assert.Error(t, err)

	in := beam(50, 8)
	in.FckMPa = 0
	_, err = Height(in, 5, 100)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestHandler(t *testing.T) {
	body := `{"bw_cm":20,"h_cm":50,"fck_mpa":25,"fyk_mpa":500,"mk_tf_m":16,"cover_cm":3,"d_prime_cm":4,"step_cm":5,"max_h_cm":80}`
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/autodesign/calc", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 55.0, out.HCM)
	assert.Equal(t, flexure.StatusSuccess, out.Flexure.Status)

	rec = httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/autodesign/calc", strings.NewReader(`{"max_h_cm":80}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body = strings.Replace(body, `"step_cm":5,"max_h_cm":80`, `"step_cm":0.0001,"max_h_cm":10000000`, 1)
	rec = httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/autodesign/calc", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "tries")
}
