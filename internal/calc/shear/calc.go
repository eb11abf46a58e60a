package shear

import (
	"encoding/json"
	"fmt"
	"math"

	"Beamcalc/internal/calc/nbr"
)

type Status string

const (
	StatusSuccess         Status = "success"
	StatusWarningMinSteel Status = "warning_min_steel"
	StatusErrorVRd2       Status = "error_vrd2"
	StatusErrorInput      Status = "error_input"
)

func (s Status) Failed() bool {
	return s == StatusErrorVRd2 || s == StatusErrorInput
}

type Input struct {
	BwCM              float64 `json:"bw_cm"`
	HCM               float64 `json:"h_cm"`
	FckMPa            float64 `json:"fck_mpa"`
	FykMPa            float64 `json:"fyk_mpa"`
	VkTf              float64 `json:"vk_tf"`
	CoverCM           float64 `json:"cover_cm"`
	StirrupDiameterMM float64 `json:"stirrup_diameter_mm"`
	Legs              int     `json:"legs"`
}

// Spacing is a stirrup spacing in cm. +Inf means no requirement.
type Spacing float64

func (s Spacing) Unbounded() bool { return math.IsInf(float64(s), 1) }

func (s Spacing) MarshalJSON() ([]byte, error) {
	if s.Unbounded() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(s))
}

func (s *Spacing) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Spacing(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Spacing(v)
	return nil
}

// Capacity is the compressed strut check (model I).
type Capacity struct {
	D       float64 `json:"d_cm"`
	Vd      float64 `json:"vd_kn"`
	Fcd     float64 `json:"fcd_kn_cm2"`
	AlphaV2 float64 `json:"alpha_v2"`
	VRd2    float64 `json:"vrd2_kn"`
}

// Stirrups holds the required reinforcement. AswSMin is in cm²/cm.
type Stirrups struct {
	Fctd     float64 `json:"fctd_kn_cm2"`
	Fywd     float64 `json:"fywd_kn_cm2"`
	Vc       float64 `json:"vc_kn"`
	Vsw      float64 `json:"vsw_kn"`
	Asw      float64 `json:"asw_cm2"`
	RhoSwMin float64 `json:"rho_sw_min"`
	AswSMin  float64 `json:"asw_s_min_cm2_cm"`
	SCalc    Spacing `json:"s_calc_cm"`
	SMinArea Spacing `json:"s_min_area_cm"`
	SMax     Spacing `json:"s_max_cm"`
	SAdopted Spacing `json:"s_adopted_cm"`
}

// Result groups are nil whenever the status leaves them without meaning.
type Result struct {
	Status   Status    `json:"status"`
	Message  string    `json:"message"`
	Capacity *Capacity `json:"capacity,omitempty"`
	Stirrups *Stirrups `json:"stirrups,omitempty"`
}

// Calculate designs vertical stirrups for a rectangular section (model I,
// θ = 45°).
func Calculate(in Input) Result {
	if !nbr.Positive(in.BwCM, in.HCM, in.FckMPa, in.FykMPa, in.VkTf, in.CoverCM, in.StirrupDiameterMM, float64(in.Legs)) {
		return Result{Status: StatusErrorInput, Message: "All input values must be positive and greater than zero."}
	}

	d := in.HCM - in.CoverCM - in.StirrupDiameterMM/10 - nbr.MainBarRadius
	if d <= 0 {
		return Result{Status: StatusErrorInput, Message: "Effective depth d is not positive. Check the height and the cover."}
	}

	// 1 tf = 10 kN
	cp := &Capacity{
		D:       d,
		Vd:      in.VkTf * 10 * nbr.GammaF,
		Fcd:     nbr.Fcd(in.FckMPa),
		AlphaV2: 1 - in.FckMPa/250,
	}
	cp.VRd2 = 0.27 * cp.AlphaV2 * cp.Fcd * in.BwCM * d
	if !nbr.Positive(cp.Vd) || !nbr.Finite(cp.VRd2) {
		return Result{Status: StatusErrorInput, Message: "The design shear or the strut capacity is out of range. Check the input values."}
	}

	if cp.Vd > cp.VRd2 {
		msg := fmt.Sprintf("Design shear (Vd = %.2f kN) exceeds the compressed strut capacity (VRd2 = %.2f kN). The concrete section is insufficient.", cp.Vd, cp.VRd2)
		return Result{Status: StatusErrorVRd2, Message: msg, Capacity: cp}
	}

	fctm := nbr.Fctm(in.FckMPa)
	sw := &Stirrups{
		Fctd: nbr.Fctd(in.FckMPa),
		Fywd: nbr.Fyd(in.FykMPa),
		Asw:  float64(in.Legs) * nbr.BarArea(in.StirrupDiameterMM),
	}
	sw.Vc = 0.6 * sw.Fctd * in.BwCM * d
	sw.Vsw = math.Max(0, cp.Vd-sw.Vc)

	sw.SCalc = Spacing(math.Inf(1))
	if sw.Vsw > 0 {
		sw.SCalc = Spacing(sw.Asw * 0.9 * d * sw.Fywd / sw.Vsw)
	}

	sw.RhoSwMin = 0.2 * fctm / in.FykMPa
	sw.AswSMin = sw.RhoSwMin * in.BwCM
	sw.SMinArea = Spacing(sw.Asw / sw.AswSMin)

	if cp.Vd <= 0.67*cp.VRd2 {
		sw.SMax = Spacing(math.Min(0.6*d, 30))
	} else {
		sw.SMax = Spacing(math.Min(0.3*d, 20))
	}
	sw.SAdopted = min(sw.SCalc, sw.SMinArea, sw.SMax)

	res := Result{Status: StatusSuccess, Message: "Stirrup design completed successfully.", Capacity: cp, Stirrups: sw}
	if sw.SCalc > sw.SMinArea || sw.SCalc > sw.SMax {
		res.Status = StatusWarningMinSteel
		res.Message = "Design OK. The spacing is governed by the minimum reinforcement or by the maximum spacing."
	}
	return res
}
