package loads

import (
	"fmt"

	"Beamcalc/internal/calc/nbr"
)

// Input is a simply supported span under uniform permanent and variable
// loads in kN/m.
type Input struct {
	SpanM float64 `json:"span_m"`
	GKNM  float64 `json:"g_kn_m"`
	QKNM  float64 `json:"q_kn_m"`
}

type Result struct {
	PkKNM float64 `json:"pk_kn_m"`
	PdKNM float64 `json:"pd_kn_m"`
	MkKNM float64 `json:"mk_kn_m"`
	VkKN  float64 `json:"vk_kn"`
	MkTfM float64 `json:"mk_tf_m"`
	VkTf  float64 `json:"vk_tf"`
	Notes string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if !nbr.Positive(in.SpanM, in.GKNM) || in.QKNM < 0 {
		return Result{}, fmt.Errorf("invalid input: span and g must be positive, q must not be negative")
	}
	pk := in.GKNM + in.QKNM
	res := Result{
		PkKNM: pk,
		PdKNM: pk * nbr.GammaF,
		MkKNM: pk * in.SpanM * in.SpanM / 8,
		VkKN:  pk * in.SpanM / 2,
		Notes: "Characteristic actions of a simply supported span. The checks apply γf themselves.",
	}
	// 1 tf = 10 kN
	res.MkTfM = res.MkKNM / 10
	res.VkTf = res.VkKN / 10
	if !nbr.Finite(res.PdKNM, res.MkKNM) {
		return Result{}, fmt.Errorf("invalid input: the actions are out of range")
	}
	return res, nil
}
