package minsteel

import "Beamcalc/internal/calc/memory"

func (s Status) Level() memory.Level {
	if s == StatusSuccess {
		return memory.LevelSuccess
	}
	return memory.LevelError
}

func Memory(in Input, res Result) memory.Sheet {
	b := memory.New("minsteel", "Minimum flexural reinforcement").
		Outcome(string(res.Status), res.Status.Level(), res.Message).
		Input("Web width", "bw", in.BwCM, "cm").
		Input("Height", "h", in.HCM, "cm").
		Input("Concrete strength", "fck", in.FckMPa, "MPa").
		Input("Steel yield strength", "fyk", in.FykMPa, "MPa").
		Input("Depth ratio", "d/h", in.DHRatio, "")

	if rt := res.Rate; rt != nil {
		b.Precise("Minimum rate", "ρmin", "table 17.3", rt.RhoMinPercent, "%", 3)
		if !rt.Tabulated {
			b.Note("fck not tabulated, lowest rate used")
		}
		b.Step("Minimum steel", "As,min", "ρmin·bw·h", rt.AsMin, "cm²").
			Step("Section modulus", "W", "bw·h²/6", rt.W, "cm³")
	}
	if rs := res.Resistance; rs != nil {
		b.Step("Effective depth", "d", "(d/h)·h", rs.D, "cm").
			Step("Design concrete strength", "fcd", "fck/γc", rs.Fcd, "kN/cm²").
			Step("Design steel strength", "fyd", "fyk/γs", rs.Fyd, "kN/cm²").
			Precise("Neutral axis", "x", "As,min·fyd/(0.68·bw·fcd)", rs.X, "cm", 3).
			Step("Resisted design moment", "Md", "As,min·fyd·(d - 0.4x)", rs.MdKNcm, "kN·cm").
			Precise("Resisted design moment", "Md", "", rs.MdTfM, "tf·m", 3)
	}
	return b.Sheet()
}
