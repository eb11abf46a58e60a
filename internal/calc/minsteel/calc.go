package minsteel

import "Beamcalc/internal/calc/nbr"

type Status string

const (
	StatusSuccess    Status = "success"
	StatusErrorInput Status = "error_input"
)

func (s Status) Failed() bool { return s == StatusErrorInput }

type Input struct {
	BwCM    float64 `json:"bw_cm"`
	HCM     float64 `json:"h_cm"`
	FckMPa  float64 `json:"fck_mpa"`
	FykMPa  float64 `json:"fyk_mpa"`
	DHRatio float64 `json:"d_h_ratio"`
}

// Rate is the tabulated minimum reinforcement. Tabulated is false when fck is
// not a table class and the lowest rate was used.
type Rate struct {
	RhoMinPercent float64 `json:"rho_min_percent"`
	Tabulated     bool    `json:"tabulated"`
	AsMin         float64 `json:"as_min_cm2"`
	W             float64 `json:"w_cm3"`
}

// Resistance is the design moment carried by the section with As,min.
type Resistance struct {
	D      float64 `json:"d_cm"`
	Fcd    float64 `json:"fcd_kn_cm2"`
	Fyd    float64 `json:"fyd_kn_cm2"`
	X      float64 `json:"x_cm"`
	MdKNcm float64 `json:"md_kn_cm"`
	MdTfM  float64 `json:"md_tf_m"`
}

type Result struct {
	Status     Status      `json:"status"`
	Message    string      `json:"message"`
	Rate       *Rate       `json:"rate,omitempty"`
	Resistance *Resistance `json:"resistance,omitempty"`
}

func inputError(msg string) Result {
	return Result{Status: StatusErrorInput, Message: msg}
}

// Calculate applies the minimum reinforcement rate of table 17.3 to the gross
// section and returns the moment that area resists.
func Calculate(in Input) Result {
	if !nbr.Positive(in.BwCM, in.HCM, in.FckMPa, in.FykMPa, in.DHRatio) {
		return inputError("All input values must be positive and greater than zero.")
	}

	rho, ok := nbr.MinimumRate(in.FckMPa)
	rt := &Rate{
		RhoMinPercent: rho,
		Tabulated:     ok,
		AsMin:         rho / 100 * in.BwCM * in.HCM,
		W:             in.BwCM * in.HCM * in.HCM / 6,
	}

	d := in.DHRatio * in.HCM
	if d <= 0 {
		return inputError("Invalid effective depth d. Check the height and the d/h ratio.")
	}

	rs := &Resistance{D: d, Fcd: nbr.Fcd(in.FckMPa), Fyd: nbr.Fyd(in.FykMPa)}
	// 0.68 bw x fcd = As fyd
	den := nbr.BlockForce * in.BwCM * rs.Fcd
	if den == 0 {
		return inputError("Calculation error. Check the input values.")
	}
	rs.X = rt.AsMin * rs.Fyd / den
	rs.MdKNcm = rt.AsMin * rs.Fyd * (d - nbr.BlockLever*rs.X)
	rs.MdTfM = rs.MdKNcm / 1000
	if !nbr.Finite(rt.AsMin, rt.W, rs.X, rs.MdKNcm) {
		return inputError("The section is out of range. Check the input values.")
	}

	res := Result{Status: StatusSuccess, Message: "Minimum reinforcement calculation completed.", Rate: rt, Resistance: rs}
	if !ok {
		res.Message += " fck is not a tabulated class; the lowest rate was used."
	}
	return res
}
