// Package recommend turns calculated steel into practical arrangements.
package recommend

import (
	"fmt"
	"math"
	"slices"

	"Beamcalc/internal/calc/nbr"
)

const (
	MinBars = 2
	MaxBars = 12
	// StirrupStep is the spacing increment used on site, in cm.
	StirrupStep = 0.5
)

// Arrangement is n bars of one diameter. Utilisation is the required area
// over the provided one.
type Arrangement struct {
	DiameterMM  float64 `json:"diameter_mm"`
	Count       int     `json:"count"`
	AsProvided  float64 `json:"as_provided_cm2"`
	Utilisation float64 `json:"utilisation"`
	Label       string  `json:"label"`
}

// Bars lists, for each diameter, the fewest bars covering asRequired (cm²),
// cheapest provided area first. Diameters needing more than MaxBars are left
// out. An empty diameter list means the commercial ones.
func Bars(asRequired float64, diameters []float64) ([]Arrangement, error) {
	if !nbr.Positive(asRequired) {
		return nil, fmt.Errorf("required area must be positive")
	}
	if len(diameters) == 0 {
		diameters = nbr.BarDiameters
	}

	var out []Arrangement
	for _, d := range diameters {
		if !nbr.Positive(d) {
			return nil, fmt.Errorf("bar diameter %v mm must be positive", d)
		}
		area := nbr.BarArea(d)
		for n := MinBars; n <= MaxBars; n++ {
			provided := float64(n) * area
			if provided < asRequired {
				continue
			}
			out = append(out, Arrangement{
				DiameterMM:  d,
				Count:       n,
				AsProvided:  provided,
				Utilisation: asRequired / provided,
				Label:       fmt.Sprintf("%d ø %g", n, d),
			})
			break
		}
	}
	slices.SortStableFunc(out, func(a, b Arrangement) int {
		switch {
		case a.AsProvided < b.AsProvided:
			return -1
		case a.AsProvided > b.AsProvided:
			return 1
		}
		return a.Count - b.Count
	})
	return out, nil
}

// Stirrups rounds an adopted spacing (cm) down to the site step.
func Stirrups(sAdopted float64) (float64, error) {
	if !nbr.Positive(sAdopted) {
		return 0, fmt.Errorf("spacing must be positive and finite")
	}
	s := math.Floor(sAdopted/StirrupStep) * StirrupStep
	if s < StirrupStep {
		return 0, fmt.Errorf("spacing %.2f cm is below %.1f cm", sAdopted, StirrupStep)
	}
	return s, nil
}
