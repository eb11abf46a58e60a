package recommend

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBars(t *testing.T) {
	bars, err := Bars(6.334922, nil)
	require.NoError(t, err)

	want := []struct {
		d     float64
		n     int
		as    float64
		ratio float64
	}{
		{10, 9, 7.068583, 0.896208},
		{12.5, 6, 7.363108, 0.860360},
		{16, 4, 8.042477, 0.787683},
		{20, 3, 9.424778, 0.672156},
		{25, 2, 9.817477, 0.645270},
		{32, 2, 16.084954, 0.393841},
		{40, 2, 25.132741, 0.252059},
	}
	require.Len(t, bars, len(want))
	for i, w := range want {
		assert.Equal(t, w.d, bars[i].DiameterMM)
		assert.Equal(t, w.n, bars[i].Count)
		assert.InDelta(t, w.as, bars[i].AsProvided, 1e-6)
		assert.InDelta(t, w.ratio, bars[i].Utilisation, 1e-6)
	}
	assert.Equal(t, "9 ø 10", bars[0].Label)
	assert.Equal(t, "6 ø 12.5", bars[1].Label)
}

func TestBarsKeepsMinimumCount(t *testing.T) {
	bars, err := Bars(0.1, []float64{16})
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, MinBars, bars[0].Count)
}

func TestBarsSkipsUnreachable(t *testing.T) {
	bars, err := Bars(50, []float64{5, 10})
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestBarsInvalid(t *testing.T) {
	_, err := Bars(0, nil)
	assert.Error(t, err)
	_, err = Bars(math.NaN(), nil)
	assert.Error(t, err)
	_, err = Bars(5, []float64{10, -8})
	assert.Error(t, err)
}

func TestStirrups(t *testing.T) {
	for in, want := range map[float64]float64{
		10.0798: 10,
		19.1377: 19,
		3.3493:  3,
		11.4165: 11,
		27.5:    27.5,
		0.5:     0.5,
	} {
		got, err := Stirrups(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.LessOrEqual(t, got, in)
	}

	for _, in := range []float64{0, -3, 0.4, math.Inf(1)} {
		_, err := Stirrups(in)
		assert.Error(t, err, in)
	}
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"as_required_cm2":6.334922,"diameters_mm":[10,12.5],"stirrup_spacing_cm":10.0798}`
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/recommend/calc", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Bars, 2)
	require.NotNil(t, out.StirrupSpacingCM)
	assert.Equal(t, 10.0, *out.StirrupSpacingCM)

	rec = httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/recommend/calc", strings.NewReader(`{"as_required_cm2":6}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "stirrup_spacing_cm")

	rec = httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/recommend/calc", strings.NewReader(`{"as_required_cm2":-1}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
