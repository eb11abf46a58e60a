package flexure

import (
	"fmt"
	"math"

	"Beamcalc/internal/calc/nbr"
)

type Status string

const (
	StatusSuccess          Status = "success"
	StatusCompressionSteel Status = "success_compression_steel"
	StatusWarningMinSteel  Status = "warning_min_steel"
	StatusErrorXDLimit     Status = "error_x_d_limit"
	StatusErrorMaxSteel    Status = "error_max_steel"
	StatusErrorInput       Status = "error_input"
)

// Failed reports whether the status carries no usable design.
func (s Status) Failed() bool {
	return s == StatusErrorXDLimit || s == StatusErrorMaxSteel || s == StatusErrorInput
}

type Input struct {
	BwCM     float64 `json:"bw_cm"`
	HCM      float64 `json:"h_cm"`
	FckMPa   float64 `json:"fck_mpa"`
	FykMPa   float64 `json:"fyk_mpa"`
	MkTfM    float64 `json:"mk_tf_m"`
	CoverCM  float64 `json:"cover_cm"`
	DPrimeCM float64 `json:"d_prime_cm"`
}

type Strengths struct {
	Fcd float64 `json:"fcd_kn_cm2"`
	Fyd float64 `json:"fyd_kn_cm2"`
	Md  float64 `json:"md_kn_cm"`
}

type Section struct {
	D       float64 `json:"d_cm"`
	X       float64 `json:"x_cm"`
	XDRatio float64 `json:"x_d_ratio"`
	XDLimit float64 `json:"x_d_limit"`
}

type Steel struct {
	As     float64 `json:"as_cm2"`
	AsCalc float64 `json:"as_calc_cm2"`
	AsMin  float64 `json:"as_min_cm2"`
	AsMax  float64 `json:"as_max_cm2"`
	RhoMin float64 `json:"rho_min"`
}

// Compression holds the doubly reinforced split.
type Compression struct {
	M1d     float64 `json:"m1d_kn_cm"`
	M2d     float64 `json:"m2d_kn_cm"`
	EpsSc   float64 `json:"eps_sc"`
	SigmaSd float64 `json:"sigma_sd_kn_cm2"`
	Yielded bool    `json:"yielded"`
	AsPrime float64 `json:"as_prime_cm2"`
	As1     float64 `json:"as1_cm2"`
	As2     float64 `json:"as2_cm2"`
}

// Result groups are nil whenever the status leaves them without meaning.
type Result struct {
	Status      Status       `json:"status"`
	Message     string       `json:"message"`
	Strengths   *Strengths   `json:"strengths,omitempty"`
	Section     *Section     `json:"section,omitempty"`
	Steel       *Steel       `json:"steel,omitempty"`
	Compression *Compression `json:"compression,omitempty"`
}

func inputError(msg string) Result {
	return Result{Status: StatusErrorInput, Message: msg}
}

// Calculate designs the tension (and, when allowDouble is set and the
// ductility limit is exceeded, compression) reinforcement of a rectangular
// section under simple bending.
func Calculate(in Input, allowDouble bool) Result {
	if !nbr.Positive(in.BwCM, in.HCM, in.FckMPa, in.FykMPa, in.MkTfM, in.CoverCM, in.DPrimeCM) {
		return inputError("All input values must be positive and greater than zero.")
	}

	// 1 tf·m = 10 kN·m = 1000 kN·cm
	st := &Strengths{
		Fcd: nbr.Fcd(in.FckMPa),
		Fyd: nbr.Fyd(in.FykMPa),
		Md:  in.MkTfM * 1000 * nbr.GammaF,
	}
	if !nbr.Positive(st.Md) {
		return inputError("The design moment is out of range. Check Mk.")
	}

	d := nbr.EffectiveDepth(in.HCM, in.CoverCM)
	if d <= 0 {
		return inputError("Effective depth d is not positive. Check the height and the cover.")
	}

	// Md = 0.68 bw x fcd (d - 0.4x)
	// 0.272 bw fcd x² - 0.68 bw fcd d x + Md = 0
	// Above fck 50 the same block is kept; only the ductility limit changes.
	a := nbr.BlockForce * nbr.BlockLever * in.BwCM * st.Fcd
	b := -nbr.BlockForce * in.BwCM * st.Fcd * d
	c := st.Md
	disc := b*b - 4*a*c
	if !nbr.Finite(a, b, disc) {
		return inputError("The section is out of range. Check the input values.")
	}
	if disc < 0 {
		return Result{
			Status:    StatusErrorXDLimit,
			Message:   "Insufficient concrete section: the design moment exceeds the maximum resisting moment. Increase the section or adopt compression reinforcement.",
			Strengths: st,
			Section:   &Section{D: d},
		}
	}
	x := (-b - math.Sqrt(disc)) / (2 * a)

	sec := &Section{D: d, X: x, XDRatio: x / d, XDLimit: nbr.XDLimit(in.FckMPa)}

	var (
		asCalc float64
		comp   *Compression
	)
	if sec.XDRatio > sec.XDLimit {
		if !allowDouble {
			msg := fmt.Sprintf("Ductility limit exceeded (x/d = %.2f > %.2f). The section needs compression reinforcement; increasing the beam dimensions is recommended.",
				sec.XDRatio, sec.XDLimit)
			return Result{Status: StatusErrorXDLimit, Message: msg, Strengths: st, Section: sec}
		}
		var msg string
		comp, msg = doubly(in, st, sec)
		if comp == nil {
			return inputError(msg)
		}
		asCalc = comp.As1 + comp.As2
	} else {
		asCalc = st.Md / (st.Fyd * (d - nbr.BlockLever*x))
	}

	rhoMin := 0.4 * nbr.Fctm(in.FckMPa) / in.FykMPa
	steel := &Steel{
		AsCalc: asCalc,
		AsMin:  math.Max(rhoMin*in.BwCM*d, nbr.RhoMinFlexureGross*in.BwCM*in.HCM),
		AsMax:  nbr.RhoMaxGross * in.BwCM * in.HCM,
		RhoMin: rhoMin,
	}
	steel.As = math.Max(steel.AsCalc, steel.AsMin)

	res := Result{Strengths: st, Section: sec, Steel: steel, Compression: comp}
	switch {
	case steel.As > steel.AsMax:
		res.Status = StatusErrorMaxSteel
		res.Message = fmt.Sprintf("Maximum reinforcement exceeded (As = %.2f cm² > %.2f cm²). Increase the concrete section.", steel.As, steel.AsMax)
	case steel.AsCalc < steel.AsMin:
		res.Status = StatusWarningMinSteel
		res.Message = fmt.Sprintf("Design OK. The calculated reinforcement (%.2f cm²) is below the minimum; minimum reinforcement adopted.", steel.AsCalc)
	case comp != nil:
		res.Status = StatusCompressionSteel
		res.Message = "Doubly reinforced design completed successfully."
	default:
		res.Status = StatusSuccess
		res.Message = "Design completed successfully."
	}
	return res
}

// doubly fixes the neutral axis at the ductility limit and splits Md into the
// concrete couple M1d and the steel couple M2d.
func doubly(in Input, st *Strengths, sec *Section) (*Compression, string) {
	d := sec.D
	if in.DPrimeCM >= d {
		return nil, "The compression steel cover d' must be smaller than the effective depth d."
	}
	x := sec.XDLimit * d
	if in.DPrimeCM >= x {
		return nil, "The compression steel lies outside the compressed zone (d' >= x). Reduce d'."
	}
	sec.X = x
	sec.XDRatio = sec.XDLimit

	c := &Compression{}
	c.M1d = nbr.BlockForce * in.BwCM * x * st.Fcd * (d - nbr.BlockLever*x)
	c.M2d = st.Md - c.M1d
	c.EpsSc = nbr.EpsilonCU * (x - in.DPrimeCM) / x
	c.SigmaSd = math.Min(st.Fyd, c.EpsSc*nbr.Es)
	c.Yielded = c.SigmaSd >= st.Fyd
	c.AsPrime = c.M2d / (c.SigmaSd * (d - in.DPrimeCM))
	c.As1 = c.M1d / (st.Fyd * (d - nbr.BlockLever*x))
	c.As2 = c.AsPrime * c.SigmaSd / st.Fyd
	return c, ""
}
