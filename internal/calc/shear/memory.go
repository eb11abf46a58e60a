package shear

import "Beamcalc/internal/calc/memory"

func (s Status) Level() memory.Level {
	switch s {
	case StatusSuccess:
		return memory.LevelSuccess
	case StatusWarningMinSteel:
		return memory.LevelWarning
	}
	return memory.LevelError
}

func Memory(in Input, res Result) memory.Sheet {
	b := memory.New("shear", "Shear: vertical stirrups, model I").
		Outcome(string(res.Status), res.Status.Level(), res.Message).
		Input("Web width", "bw", in.BwCM, "cm").
		Input("Height", "h", in.HCM, "cm").
		Input("Concrete strength", "fck", in.FckMPa, "MPa").
		Input("Stirrup yield strength", "fywk", in.FykMPa, "MPa").
		Input("Characteristic shear", "Vk", in.VkTf, "tf").
		Input("Cover", "c", in.CoverCM, "cm").
		Input("Stirrup diameter", "φt", in.StirrupDiameterMM, "mm").
		Input("Legs", "n", float64(in.Legs), "")

	if cp := res.Capacity; cp != nil {
		b.Step("Effective depth", "d", "h - c - φt - φ/2", cp.D, "cm").
			Step("Design shear", "Vd", "γf·Vk", cp.Vd, "kN").
			Step("Design concrete strength", "fcd", "fck/γc", cp.Fcd, "kN/cm²").
			Precise("Strut efficiency", "αv2", "1 - fck/250", cp.AlphaV2, "", 3).
			Step("Strut capacity", "VRd2", "0.27·αv2·fcd·bw·d", cp.VRd2, "kN")
	}
	if sw := res.Stirrups; sw != nil {
		b.Precise("Design tensile strength", "fctd", "0.7·fctm/γc", sw.Fctd, "kN/cm²", 4).
			Step("Design stirrup strength", "fywd", "fywk/γs", sw.Fywd, "kN/cm²").
			Step("Concrete contribution", "Vc", "0.6·fctd·bw·d", sw.Vc, "kN").
			Step("Stirrup contribution", "Vsw", "max(0, Vd - Vc)", sw.Vsw, "kN").
			Precise("Stirrup area", "Asw", "n·π·φt²/4", sw.Asw, "cm²", 3).
			Step("Calculated spacing", "s,calc", "Asw·0.9·d·fywd/Vsw", float64(sw.SCalc), "cm")
		if sw.SCalc.Unbounded() {
			b.Note("no stirrups required by calculation")
		}
		b.Precise("Minimum ratio", "ρsw,min", "0.2·fctm/fywk", sw.RhoSwMin, "", 5).
			Step("Spacing for minimum area", "s,min", "Asw/(ρsw,min·bw)", float64(sw.SMinArea), "cm").
			Step("Maximum spacing", "s,max", "", float64(sw.SMax), "cm")
		if cp := res.Capacity; cp.Vd <= 0.67*cp.VRd2 {
			b.Note("Vd ≤ 0.67·VRd2")
		} else {
			b.Note("Vd > 0.67·VRd2")
		}
		b.Step("Adopted spacing", "s", "min(s,calc, s,min, s,max)", float64(sw.SAdopted), "cm")
	}
	return b.Sheet()
}
