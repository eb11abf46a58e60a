package anchorage

import (
	"Beamcalc/internal/calc/memory"
	"Beamcalc/internal/calc/nbr"
)

func (s Status) Level() memory.Level {
	if s == StatusSuccess {
		return memory.LevelSuccess
	}
	return memory.LevelError
}

func Memory(in Input, res Result) memory.Sheet {
	b := memory.New("anchorage", "Anchorage length of bars in tension").
		Outcome(string(res.Status), res.Status.Level(), res.Message).
		Input("Bar diameter", "φ", in.DiameterMM, "mm").
		Input("Concrete strength", "fck", in.FckMPa, "MPa")
	if in.Ratio == nbr.RatioCustom {
		b.Input("Calculated steel", "As,calc", in.AsCalcCM2, "cm²").
			Input("Effective steel", "As,ef", in.AsEfCM2, "cm²")
	}

	bd, ln := res.Bond, res.Length
	if bd == nil || ln == nil {
		return b.Sheet()
	}
	b.Step("Design steel strength", "fyd", "fyk/γs", bd.Fyd, "kN/cm²").Note(string(in.BarType)).
		Precise("Design tensile strength", "fctd", "0.7·fctm/γc", bd.Fctd, "kN/cm²", 4).
		Step("Surface coefficient", "η1", "", bd.N1, "").
		Step("Bond coefficient", "η2", "", bd.N2, "").Note(string(in.Bond)).
		Step("Diameter coefficient", "η3", "", bd.N3, "").
		Precise("Bond stress", "fbd", "η1·η2·η3·fctd", bd.Fbd, "kN/cm²", 4)

	formula := "(φ/4)·(fyd/fbd)"
	if in.BarType.Plain() {
		formula = "2·(φ/4)·(fyd/fbd)"
	}
	b.Step("Basic length", "lb", formula, ln.Lb, "cm").
		Step("Hook factor", "α", "", ln.Alpha, "").Note(string(in.Anchorage)).
		Precise("Steel ratio", "As,calc/As,ef", "", ln.SteelRatio, "", 3).
		Step("Required length, calculated", "lb,nec,calc", "α·lb·As,calc/As,ef", ln.LbNecCalc, "cm").
		Step("Minimum length", "lb,min", "max(0.3·lb, 10φ, 10 cm)", ln.LbMin, "cm").
		Step("Required length", "lb,nec", "max(lb,nec,calc, lb,min)", ln.LbNec, "cm")
	return b.Sheet()
}
