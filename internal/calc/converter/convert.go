// Package converter finds the spacing that keeps the steel area per metre when
// a bar or stirrup diameter is swapped.
package converter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"Beamcalc/internal/calc/nbr"
)

type Mode string

const (
	Longitudinal Mode = "longitudinal"
	Stirrup      Mode = "stirrup"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Longitudinal, Stirrup:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (use longitudinal or stirrup)", s)
}

// Input leg counts are read only in stirrup mode.
type Input struct {
	Mode                 Mode    `json:"mode"`
	DiameterMM           float64 `json:"diameter_mm"`
	SpacingCM            float64 `json:"spacing_cm"`
	Legs                 int     `json:"legs,omitempty"`
	EquivalentDiameterMM float64 `json:"equivalent_diameter_mm"`
	EquivalentLegs       int     `json:"equivalent_legs,omitempty"`
	Truncate             bool    `json:"truncate"`
}

// Result.SpacingCM is the equivalent spacing, floored to 0.1 cm when
// truncated.
type Result struct {
	AsPerMeterCM2 float64 `json:"as_per_meter_cm2"`
	SpacingCM     float64 `json:"spacing_cm"`
	ExactCM       float64 `json:"exact_spacing_cm"`
	Truncated     bool    `json:"truncated"`
}

func (in Input) legs() (int, int) {
	if in.Mode == Stirrup {
		return in.Legs, in.EquivalentLegs
	}
	return 1, 1
}

// Convert returns false when the input cannot produce a spacing.
func Convert(in Input) (Result, bool) {
	if in.Mode != Longitudinal && in.Mode != Stirrup {
		return Result{}, false
	}
	n, neq := in.legs()
	if !nbr.Positive(in.DiameterMM, in.SpacingCM, in.EquivalentDiameterMM, float64(n), float64(neq)) {
		return Result{}, false
	}

	res := Result{
		AsPerMeterCM2: nbr.BarArea(in.DiameterMM) * float64(n) * 100 / in.SpacingCM,
		Truncated:     in.Truncate,
	}

	// s_eq = A_eq·n_eq·100/(A·n·100/s); π cancels, so the ratio stays exact
	// for the decimal inputs a user types.
	phi := decimal.NewFromFloat(in.DiameterMM)
	phiEq := decimal.NewFromFloat(in.EquivalentDiameterMM)
	s := decimal.NewFromFloat(in.SpacingCM).
		Mul(phiEq).Mul(phiEq).Mul(decimal.NewFromInt(int64(neq))).
		Div(phi.Mul(phi).Mul(decimal.NewFromInt(int64(n))))

	res.ExactCM = s.InexactFloat64()
	res.SpacingCM = res.ExactCM
	if in.Truncate {
		res.SpacingCM = s.RoundFloor(1).InexactFloat64()
	}
	if !nbr.Positive(res.AsPerMeterCM2, res.ExactCM) || !nbr.Finite(res.SpacingCM) {
		return Result{}, false
	}
	return res, true
}
