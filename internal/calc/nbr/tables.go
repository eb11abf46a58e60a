package nbr

type barProp struct {
	fyk float64 // MPa
	n1  float64 // bond surface coefficient
}

var barProps = map[BarType]barProp{
	CA25: {fyk: 250, n1: 1.0},
	CA50: {fyk: 500, n1: 2.25},
	CA60: {fyk: 600, n1: 2.25},
}

// NominalFyk returns the characteristic yield strength of a bar category, or 0
// for an unknown category.
func NominalFyk(b BarType) float64 { return barProps[b].fyk }

// BondCoefficient returns η1 for the bar surface, or 0 for an unknown category.
func BondCoefficient(b BarType) float64 { return barProps[b].n1 }

// Minimum cover to the stirrup for beams, in cm (table 7.2).
var coverByClass = map[AggressivenessClass]float64{
	CAA1: 2.5,
	CAA2: 3.0,
	CAA3: 4.0,
	CAA4: 5.0,
}

func Cover(c AggressivenessClass) (float64, bool) {
	v, ok := coverByClass[c]
	return v, ok
}

// Minimum flexural reinforcement rates for rectangular sections, in percent of
// the gross area (table 17.3), keyed by fck in MPa.
var minimumRates = map[float64]float64{
	20: 0.150,
	25: 0.150,
	30: 0.150,
	35: 0.164,
	40: 0.179,
	45: 0.194,
	50: 0.208,
	55: 0.211,
	60: 0.219,
	65: 0.226,
	70: 0.233,
	75: 0.239,
	80: 0.245,
	85: 0.251,
	90: 0.256,
}

// lowestMinimumRate is used when fck is not a tabulated class.
const lowestMinimumRate = 0.150

// MinimumRate returns ρmin in percent for fck. The second value is false when
// fck is not a tabulated class and the lowest rate was used instead.
func MinimumRate(fck float64) (float64, bool) {
	if v, ok := minimumRates[fck]; ok {
		return v, true
	}
	return lowestMinimumRate, false
}

// Commercial diameters in mm.
var (
	BarDiameters     = []float64{5.0, 6.3, 8.0, 10.0, 12.5, 16.0, 20.0, 25.0, 32.0, 40.0}
	StirrupDiameters = []float64{5.0, 6.3, 8.0, 10.0}
)
