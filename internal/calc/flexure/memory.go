package flexure

import "Beamcalc/internal/calc/memory"

func (s Status) Level() memory.Level {
	switch s {
	case StatusSuccess, StatusCompressionSteel:
		return memory.LevelSuccess
	case StatusWarningMinSteel:
		return memory.LevelWarning
	}
	return memory.LevelError
}

// Memory lists the values of res in calculation order.
func Memory(in Input, res Result) memory.Sheet {
	b := memory.New("flexure", "Flexure: rectangular section, simple bending").
		Outcome(string(res.Status), res.Status.Level(), res.Message).
		Input("Web width", "bw", in.BwCM, "cm").
		Input("Height", "h", in.HCM, "cm").
		Input("Concrete strength", "fck", in.FckMPa, "MPa").
		Input("Steel yield strength", "fyk", in.FykMPa, "MPa").
		Input("Characteristic moment", "Mk", in.MkTfM, "tf·m").
		Input("Cover", "c", in.CoverCM, "cm").
		Input("Compression steel cover", "d'", in.DPrimeCM, "cm")

	if st := res.Strengths; st != nil {
		b.Step("Design concrete strength", "fcd", "fck/γc", st.Fcd, "kN/cm²").
			Step("Design steel strength", "fyd", "fyk/γs", st.Fyd, "kN/cm²").
			Step("Design moment", "Md", "γf·Mk", st.Md, "kN·cm")
	}
	sec := res.Section
	if sec == nil {
		return b.Sheet()
	}
	b.Step("Effective depth", "d", "h - c - φt - φ/2", sec.D, "cm")
	if sec.XDLimit == 0 {
		return b.Sheet()
	}

	if c := res.Compression; c != nil {
		b.Step("Neutral axis fixed at the limit", "x", "(x/d)lim·d", sec.X, "cm").
			Step("Concrete couple", "M1d", "0.68·bw·x·fcd·(d - 0.4x)", c.M1d, "kN·cm").
			Step("Steel couple", "M2d", "Md - M1d", c.M2d, "kN·cm").
			Precise("Compression steel strain", "εsc", "εcu·(x - d')/x", c.EpsSc, "", 5).
			Step("Compression steel stress", "σsd", "min(εsc·Es, fyd)", c.SigmaSd, "kN/cm²")
		if c.Yielded {
			b.Note("yielded")
		} else {
			b.Note("not yielded")
		}
		b.Step("Compression steel", "A's", "M2d/(σsd·(d - d'))", c.AsPrime, "cm²").
			Step("Tension steel, concrete couple", "As1", "M1d/(fyd·(d - 0.4x))", c.As1, "cm²").
			Step("Tension steel, steel couple", "As2", "A's·σsd/fyd", c.As2, "cm²")
	} else {
		b.Step("Neutral axis", "x", "root of 0.272·bw·fcd·x² - 0.68·bw·fcd·d·x + Md", sec.X, "cm")
	}
	b.Precise("Ductility ratio", "x/d", "", sec.XDRatio, "", 3).
		Precise("Ductility limit", "(x/d)lim", "", sec.XDLimit, "", 2)

	if s := res.Steel; s != nil {
		b.Precise("Minimum ratio", "ρmin", "0.4·fctm/fyk", s.RhoMin, "", 5).
			Step("Calculated tension steel", "As,calc", "", s.AsCalc, "cm²").
			Step("Minimum steel", "As,min", "max(ρmin·bw·d, 0.15%·bw·h)", s.AsMin, "cm²").
			Step("Maximum steel", "As,max", "4%·bw·h", s.AsMax, "cm²").
			Step("Adopted tension steel", "As", "max(As,calc, As,min)", s.As, "cm²")
	}
	return b.Sheet()
}
