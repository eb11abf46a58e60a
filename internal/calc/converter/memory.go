package converter

import (
	"Beamcalc/internal/calc/memory"
	"Beamcalc/internal/calc/nbr"
)

const (
	StatusOK            = "ok"
	StatusNotComputable = "not_computable"
)

func Memory(in Input, res Result, ok bool) memory.Sheet {
	title := "Bar equivalence: longitudinal"
	formula := "s·(φeq/φ)²"
	if in.Mode == Stirrup {
		title = "Bar equivalence: stirrups"
		formula = "s·(φeq/φ)²·neq/n"
	}
	b := memory.New("convert", title)
	if !ok {
		b.Outcome(StatusNotComputable, memory.LevelError, "Equivalent spacing could not be computed. Check the diameters, the spacing and the legs.")
	} else {
		b.Outcome(StatusOK, memory.LevelSuccess, "")
	}

	n, neq := in.legs()
	b.Input("Diameter", "φ", in.DiameterMM, "mm").
		Input("Spacing", "s", in.SpacingCM, "cm")
	if in.Mode == Stirrup {
		b.Input("Legs", "n", float64(n), "")
	}
	b.Input("Equivalent diameter", "φeq", in.EquivalentDiameterMM, "mm")
	if in.Mode == Stirrup {
		b.Input("Equivalent legs", "neq", float64(neq), "")
	}
	if !ok {
		return b.Sheet()
	}

	b.Precise("Bar area", "As,φ", "π·φ²/4", nbr.BarArea(in.DiameterMM), "cm²", 3).
		Step("Steel per metre", "As/m", "As,φ·n·100/s", res.AsPerMeterCM2, "cm²/m").
		Precise("Equivalent spacing", "s,eq", formula, res.ExactCM, "cm", 3)
	if res.Truncated {
		b.Precise("Adopted spacing", "s", "floor(s,eq, 0.1)", res.SpacingCM, "cm", 1)
	}
	return b.Sheet()
}
