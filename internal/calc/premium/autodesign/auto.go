// Package autodesign searches the smallest section height that passes the
// singly reinforced flexure check.
package autodesign

import (
	"fmt"
	"math"

	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/nbr"
	"Beamcalc/internal/errors"
)

// DefaultStep is the height increment when none is given, in cm.
const DefaultStep = 5.0

// MaxTries bounds the heights one search may evaluate.
const MaxTries = 1000

type Input struct {
	flexure.Input
	StepCM      float64 `json:"step_cm"`
	MaxHeightCM float64 `json:"max_h_cm"`
}

type Result struct {
	HCM     float64        `json:"h_cm"`
	Tried   int            `json:"tried"`
	Flexure flexure.Result `json:"flexure"`
	Notes   string         `json:"notes"`
}

// Height tries in.HCM, in.HCM+step and so on up to maxH. Without a starting
// height it begins at the first multiple of step with a positive d.
func Height(in flexure.Input, step, maxH float64) (Result, error) {
	if step == 0 {
		step = DefaultStep
	}
	if !nbr.Positive(step, maxH) {
		return Result{}, errors.Input("step and maximum height must be positive")
	}
	start := in.HCM
	if !(start > 0) {
		start = step
		for i := 0; start <= maxH && nbr.EffectiveDepth(start, in.CoverCM) <= 0; i++ {
			if i == MaxTries {
				return Result{}, errors.Newf(errors.TypeInput, "no positive effective depth within %d steps of %g cm", MaxTries, step)
			}
			start += step
		}
	}
	if start > maxH {
		return Result{}, errors.Newf(errors.TypeInput, "starting height %.1f cm is above the maximum %.1f cm", start, maxH)
	}

	tries := math.Floor((maxH-start)/step+1e-9) + 1
	if tries > MaxTries {
		return Result{}, errors.Newf(errors.TypeInput, "searching %.1f to %.1f cm in %g cm steps needs more than %d tries; raise the step", start, maxH, step, MaxTries)
	}
	n := int(tries)
	var last flexure.Result
	for k := 0; k < n; k++ {
		in.HCM = start + float64(k)*step
		res := flexure.Calculate(in, false)
		switch res.Status {
		case flexure.StatusSuccess, flexure.StatusWarningMinSteel:
			return Result{
				HCM:     in.HCM,
				Tried:   k + 1,
				Flexure: res,
				Notes:   fmt.Sprintf("Smallest height in %.1f cm steps without compression steel.", step),
			}, nil
		case flexure.StatusErrorInput:
			return Result{}, errors.Input(res.Message).WithContext("h_cm", in.HCM)
		}
		last = res
	}
	return Result{}, errors.Newf(errors.TypeInput, "no height up to %.1f cm passes: %s", maxH, last.Message).
		WithContext("status", string(last.Status))
}
