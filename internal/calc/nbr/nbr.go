// Package nbr holds the NBR 6118:2014 constants and material relations shared
// by the beam checks. Lengths are in cm, stresses in kN/cm² unless a name says
// otherwise.
package nbr

import "math"

const (
	GammaC = 1.4  // concrete partial factor
	GammaS = 1.15 // steel partial factor
	GammaF = 1.4  // action factor

	Es        = 21000.0 // kN/cm²
	EpsilonCU = 0.0035  // ultimate concrete strain

	// Effective depth assumes a 10 mm stirrup and a 16 mm main bar.
	StirrupAllowance = 1.0
	MainBarRadius    = 0.8

	// Flexure stress block for fck <= 50 (αc = 0.85, λ = 0.8).
	BlockForce = 0.68
	BlockLever = 0.4

	// fck above which the reduced ductility limit applies.
	HighStrengthFck = 50.0

	RhoMinFlexureGross = 0.0015
	RhoMaxGross        = 0.04
)

// Fcd returns the design compressive strength in kN/cm² for fck in MPa.
func Fcd(fck float64) float64 {
	return fck / GammaC / 10
}

// Fyd returns the design yield strength in kN/cm² for fyk in MPa.
func Fyd(fyk float64) float64 {
	return fyk / GammaS / 10
}

// Fctm returns the mean tensile strength in MPa (item 8.2.5).
func Fctm(fck float64) float64 {
	if fck <= HighStrengthFck {
		return 0.3 * math.Pow(fck, 2.0/3.0)
	}
	return 2.12 * math.Log(1+0.11*fck)
}

// Fctd returns the design tensile strength in kN/cm², from the lower
// characteristic value fctk,inf = 0.7 fctm.
func Fctd(fck float64) float64 {
	return 0.7 * Fctm(fck) / GammaC / 10
}

// XDLimit is the ductility limit for x/d (item 14.6.4.3).
func XDLimit(fck float64) float64 {
	if fck <= HighStrengthFck {
		return 0.45
	}
	return 0.35
}

// BarArea returns the cross-section area in cm² of a bar given in mm.
func BarArea(diameterMM float64) float64 {
	r := diameterMM / 10 / 2
	return math.Pi * r * r
}

// EffectiveDepth is d for a section with the default stirrup.
func EffectiveDepth(h, cover float64) float64 {
	return h - cover - StirrupAllowance - MainBarRadius
}

// Positive reports whether every value is strictly positive and finite.
func Positive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Finite reports whether no value is NaN or infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
