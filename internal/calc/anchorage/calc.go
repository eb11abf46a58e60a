package anchorage

import (
	"fmt"
	"math"

	"Beamcalc/internal/calc/nbr"
)

type Status string

const (
	StatusSuccess    Status = "success"
	StatusErrorInput Status = "error_input"
)

func (s Status) Failed() bool { return s == StatusErrorInput }

// Input describes a bar in tension. The areas are read only in custom ratio
// mode.
type Input struct {
	DiameterMM float64              `json:"diameter_mm"`
	FckMPa     float64              `json:"fck_mpa"`
	BarType    nbr.BarType          `json:"bar_type"`
	Ratio      nbr.SteelRatioOption `json:"steel_ratio"`
	AsCalcCM2  float64              `json:"as_calc_cm2,omitempty"`
	AsEfCM2    float64              `json:"as_ef_cm2,omitempty"`
	Anchorage  nbr.AnchorageType    `json:"anchorage_type"`
	Bond       nbr.BondCondition    `json:"bond_condition"`
}

// Bond holds the ultimate bond stress and the values it derives from.
type Bond struct {
	Phi  float64 `json:"phi_cm"`
	Fyd  float64 `json:"fyd_kn_cm2"`
	Fctd float64 `json:"fctd_kn_cm2"`
	N1   float64 `json:"eta1"`
	N2   float64 `json:"eta2"`
	N3   float64 `json:"eta3"`
	Fbd  float64 `json:"fbd_kn_cm2"`
}

type Length struct {
	Lb         float64 `json:"lb_cm"`
	Alpha      float64 `json:"alpha"`
	SteelRatio float64 `json:"steel_ratio"`
	LbNecCalc  float64 `json:"lb_nec_calc_cm"`
	LbMin      float64 `json:"lb_min_cm"`
	LbNec      float64 `json:"lb_nec_cm"`
}

type Result struct {
	Status  Status  `json:"status"`
	Message string  `json:"message"`
	Bond    *Bond   `json:"bond,omitempty"`
	Length  *Length `json:"length,omitempty"`
}

func inputError(msg string) Result {
	return Result{Status: StatusErrorInput, Message: msg}
}

func validate(in Input) string {
	switch {
	case !nbr.Positive(in.DiameterMM, in.FckMPa):
		return "The bar diameter and fck must be positive."
	case !in.BarType.Valid():
		return "Unknown bar type. Use CA-25, CA-50 or CA-60."
	case !in.Ratio.Valid():
		return "Unknown steel ratio option. Use equal or custom."
	case !in.Anchorage.Valid():
		return "Unknown anchorage type. Use straight or hook."
	case !in.Bond.Valid():
		return "Unknown bond condition. Use good or poor."
	case in.AsCalcCM2 < 0 || in.AsEfCM2 < 0:
		return "Steel areas must not be negative."
	case diameterFactor(in.DiameterMM) <= 0:
		return fmt.Sprintf("A %g mm bar leaves no bond strength (η3 = (132 - φ)/100 <= 0).", in.DiameterMM)
	}
	if in.Ratio == nbr.RatioCustom {
		if !nbr.Positive(in.AsCalcCM2, in.AsEfCM2) {
			return "Custom steel ratio needs both As,calc and As,ef greater than zero."
		}
		if in.AsCalcCM2 > in.AsEfCM2 {
			return "The effective steel area (As,ef) must be greater than or equal to the calculated area (As,calc)."
		}
	}
	if in.Anchorage == nbr.Hook && in.BarType.Plain() {
		return "Hooks are not allowed for plain CA-25 bars in tension. Use a straight anchorage."
	}
	return ""
}

// Calculate returns the basic and required anchorage lengths of a bar in
// tension (item 9.4.2).
func Calculate(in Input) Result {
	if msg := validate(in); msg != "" {
		return inputError(msg)
	}

	bd := &Bond{
		Phi:  in.DiameterMM / 10,
		Fyd:  nbr.Fyd(nbr.NominalFyk(in.BarType)),
		Fctd: nbr.Fctd(in.FckMPa),
		N1:   nbr.BondCoefficient(in.BarType),
		N2:   bondFactor(in.Bond),
		N3:   diameterFactor(in.DiameterMM),
	}
	bd.Fbd = bd.N1 * bd.N2 * bd.N3 * bd.Fctd
	if !nbr.Positive(bd.Fbd) {
		return inputError("The design bond stress fbd is not positive. Check the bar diameter and fck.")
	}

	ln := &Length{
		Lb:         bd.Phi / 4 * bd.Fyd / bd.Fbd,
		Alpha:      hookFactor(in.BarType, in.Anchorage),
		SteelRatio: 1.0,
	}
	if in.BarType.Plain() {
		ln.Lb *= 2
	}
	if in.Ratio == nbr.RatioCustom {
		ln.SteelRatio = in.AsCalcCM2 / in.AsEfCM2
	}
	ln.LbNecCalc = ln.Alpha * ln.Lb * ln.SteelRatio
	ln.LbMin = math.Max(math.Max(0.3*ln.Lb, 10*bd.Phi), 10)
	ln.LbNec = math.Max(ln.LbNecCalc, ln.LbMin)
	if !nbr.Finite(ln.Lb, ln.LbNec) {
		return inputError("The anchorage length is out of range. Check the input values.")
	}

	return Result{Status: StatusSuccess, Message: "Anchorage length calculation completed.", Bond: bd, Length: ln}
}

func bondFactor(c nbr.BondCondition) float64 {
	if c == nbr.BondPoor {
		return 0.7
	}
	return 1.0
}

func diameterFactor(mm float64) float64 {
	if mm <= 32 {
		return 1.0
	}
	return (132 - mm) / 100
}

// hookFactor is 0.7 for a hooked ribbed bar. Plain bars never take the
// reduction.
func hookFactor(b nbr.BarType, a nbr.AnchorageType) float64 {
	if a == nbr.Hook && !b.Plain() {
		return 0.7
	}
	return 1.0
}
