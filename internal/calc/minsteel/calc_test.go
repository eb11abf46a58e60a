package minsteel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		fck       float64
		rho       float64
		tabulated bool
		asMin     float64
		x         float64
		mdKNcm    float64
	}{
		{fck: 25, rho: 0.150, tabulated: true, asMin: 1.5, x: 2.68542, mdKNcm: 2864.728},
		{fck: 40, rho: 0.179, tabulated: true, asMin: 1.79, x: 2.00288, mdKNcm: 3439.823},
		{fck: 90, rho: 0.256, tabulated: true, asMin: 2.56, x: 1.27309, mdKNcm: 4952.016},
		{fck: 27, rho: 0.150, tabulated: false, asMin: 1.5, x: 2.48650, mdKNcm: 2869.917},
	}

	for _, tt := range tests {
		res := Calculate(Input{BwCM: 20, HCM: 50, FckMPa: tt.fck, FykMPa: 500, DHRatio: 0.9})

		require.Equal(t, StatusSuccess, res.Status, "fck %v", tt.fck)
		require.NotNil(t, res.Rate)
		require.NotNil(t, res.Resistance)
		assert.Equal(t, tt.rho, res.Rate.RhoMinPercent)
		assert.Equal(t, tt.tabulated, res.Rate.Tabulated)
		assert.InDelta(t, tt.asMin, res.Rate.AsMin, 1e-9)
		assert.InDelta(t, 8333.3333, res.Rate.W, 1e-4)
		assert.InDelta(t, 45, res.Resistance.D, 1e-9)
		assert.InDelta(t, tt.x, res.Resistance.X, 1e-5)
		assert.InDelta(t, tt.mdKNcm, res.Resistance.MdKNcm, 1e-3)
		assert.InDelta(t, tt.mdKNcm/1000, res.Resistance.MdTfM, 1e-6)
	}
}

func TestCalculateFallbackIsReported(t *testing.T) {
	res := Calculate(Input{BwCM: 20, HCM: 50, FckMPa: 27, FykMPa: 500, DHRatio: 0.9})
	assert.Contains(t, res.Message, "lowest rate")

	sheet := Memory(Input{BwCM: 20, HCM: 50, FckMPa: 27, FykMPa: 500, DHRatio: 0.9}, res)
	require.NotEmpty(t, sheet.Steps)
	assert.NotEmpty(t, sheet.Steps[0].Note)
}

func TestCalculateInvalidInput(t *testing.T) {
	for _, in := range []Input{
		{},
		{BwCM: 20, HCM: 50, FckMPa: 25, FykMPa: 500},
		{BwCM: 20, HCM: -50, FckMPa: 25, FykMPa: 500, DHRatio: 0.9},
		{BwCM: 20, HCM: 50, FckMPa: 25, FykMPa: 0, DHRatio: 0.9},
		{BwCM: 1e300, HCM: 1e300, FckMPa: 25, FykMPa: 500, DHRatio: 0.9},
	} {
		res := Calculate(in)
		assert.Equal(t, StatusErrorInput, res.Status)
		assert.Nil(t, res.Rate)
		assert.Nil(t, res.Resistance)

		sheet := Memory(in, res)
		assert.Equal(t, "error", string(sheet.Level))
		assert.Empty(t, sheet.Steps)
	}
}
