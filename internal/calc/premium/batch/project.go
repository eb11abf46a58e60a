// Package batch runs a whole project of labelled checks, read from an HCL
// file or a JSON request, and summarizes the outcome.
package batch

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"Beamcalc/internal/calc/anchorage"
	"Beamcalc/internal/calc/converter"
	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/minsteel"
	"Beamcalc/internal/calc/nbr"
	"Beamcalc/internal/calc/shear"
	"Beamcalc/internal/errors"
)

type Project struct {
	Name      string          `hcl:"project,optional" json:"project"`
	Author    string          `hcl:"author,optional" json:"author"`
	Flexure   []FlexureItem   `hcl:"flexure,block" json:"flexure"`
	Shear     []ShearItem     `hcl:"shear,block" json:"shear"`
	Anchorage []AnchorageItem `hcl:"anchorage,block" json:"anchorage"`
	MinSteel  []MinSteelItem  `hcl:"minsteel,block" json:"minsteel"`
	Convert   []ConvertItem   `hcl:"convert,block" json:"convert"`
}

func (p Project) Len() int {
	return len(p.Flexure) + len(p.Shear) + len(p.Anchorage) + len(p.MinSteel) + len(p.Convert)
}

type FlexureItem struct {
	Label       string  `hcl:"label,label" json:"label"`
	Bw          float64 `hcl:"bw" json:"bw_cm"`
	H           float64 `hcl:"h" json:"h_cm"`
	Fck         float64 `hcl:"fck" json:"fck_mpa"`
	Fyk         float64 `hcl:"fyk" json:"fyk_mpa"`
	Mk          float64 `hcl:"mk" json:"mk_tf_m"`
	Cover       float64 `hcl:"cover" json:"cover_cm"`
	DPrime      float64 `hcl:"d_prime" json:"d_prime_cm"`
	AllowDouble bool    `hcl:"allow_double,optional" json:"allow_double"`
}

func (it FlexureItem) Input() flexure.Input {
	return flexure.Input{BwCM: it.Bw, HCM: it.H, FckMPa: it.Fck, FykMPa: it.Fyk, MkTfM: it.Mk, CoverCM: it.Cover, DPrimeCM: it.DPrime}
}

type ShearItem struct {
	Label           string  `hcl:"label,label" json:"label"`
	Bw              float64 `hcl:"bw" json:"bw_cm"`
	H               float64 `hcl:"h" json:"h_cm"`
	Fck             float64 `hcl:"fck" json:"fck_mpa"`
	Fyk             float64 `hcl:"fyk" json:"fyk_mpa"`
	Vk              float64 `hcl:"vk" json:"vk_tf"`
	Cover           float64 `hcl:"cover" json:"cover_cm"`
	StirrupDiameter float64 `hcl:"stirrup_diameter" json:"stirrup_diameter_mm"`
	Legs            int     `hcl:"legs" json:"legs"`
}

func (it ShearItem) Input() shear.Input {
	return shear.Input{BwCM: it.Bw, HCM: it.H, FckMPa: it.Fck, FykMPa: it.Fyk, VkTf: it.Vk, CoverCM: it.Cover, StirrupDiameterMM: it.StirrupDiameter, Legs: it.Legs}
}

type AnchorageItem struct {
	Label     string  `hcl:"label,label" json:"label"`
	Diameter  float64 `hcl:"diameter" json:"diameter_mm"`
	Fck       float64 `hcl:"fck" json:"fck_mpa"`
	BarType   string  `hcl:"bar_type" json:"bar_type"`
	Ratio     string  `hcl:"steel_ratio,optional" json:"steel_ratio"`
	AsCalc    float64 `hcl:"as_calc,optional" json:"as_calc_cm2"`
	AsEf      float64 `hcl:"as_ef,optional" json:"as_ef_cm2"`
	Anchorage string  `hcl:"anchorage_type,optional" json:"anchorage_type"`
	Bond      string  `hcl:"bond_condition,optional" json:"bond_condition"`
}

// Input normalizes the enum spellings. Unknown values are passed through so
// the check reports them.
func (it AnchorageItem) Input() anchorage.Input {
	in := anchorage.Input{
		DiameterMM: it.Diameter,
		FckMPa:     it.Fck,
		AsCalcCM2:  it.AsCalc,
		AsEfCM2:    it.AsEf,
		BarType:    nbr.BarType(it.BarType),
		Ratio:      nbr.RatioEqual,
		Anchorage:  nbr.Straight,
		Bond:       nbr.BondGood,
	}
	if bt, err := nbr.ParseBarType(it.BarType); err == nil {
		in.BarType = bt
	}
	if it.Ratio != "" {
		in.Ratio = nbr.SteelRatioOption(it.Ratio)
		if v, err := nbr.ParseSteelRatioOption(it.Ratio); err == nil {
			in.Ratio = v
		}
	}
	if it.Anchorage != "" {
		in.Anchorage = nbr.AnchorageType(it.Anchorage)
		if v, err := nbr.ParseAnchorageType(it.Anchorage); err == nil {
			in.Anchorage = v
		}
	}
	if it.Bond != "" {
		in.Bond = nbr.BondCondition(it.Bond)
		if v, err := nbr.ParseBondCondition(it.Bond); err == nil {
			in.Bond = v
		}
	}
	return in
}

type MinSteelItem struct {
	Label   string  `hcl:"label,label" json:"label"`
	Bw      float64 `hcl:"bw" json:"bw_cm"`
	H       float64 `hcl:"h" json:"h_cm"`
	Fck     float64 `hcl:"fck" json:"fck_mpa"`
	Fyk     float64 `hcl:"fyk" json:"fyk_mpa"`
	DHRatio float64 `hcl:"d_h_ratio" json:"d_h_ratio"`
}

func (it MinSteelItem) Input() minsteel.Input {
	return minsteel.Input{BwCM: it.Bw, HCM: it.H, FckMPa: it.Fck, FykMPa: it.Fyk, DHRatio: it.DHRatio}
}

type ConvertItem struct {
	Label              string  `hcl:"label,label" json:"label"`
	Mode               string  `hcl:"mode,optional" json:"mode"`
	Diameter           float64 `hcl:"diameter" json:"diameter_mm"`
	Spacing            float64 `hcl:"spacing" json:"spacing_cm"`
	Legs               int     `hcl:"legs,optional" json:"legs"`
	EquivalentDiameter float64 `hcl:"equivalent_diameter" json:"equivalent_diameter_mm"`
	EquivalentLegs     int     `hcl:"equivalent_legs,optional" json:"equivalent_legs"`
	Truncate           bool    `hcl:"truncate,optional" json:"truncate"`
}

func (it ConvertItem) Input() converter.Input {
	mode := converter.Longitudinal
	if it.Mode != "" {
		mode = converter.Mode(it.Mode)
		if m, err := converter.ParseMode(it.Mode); err == nil {
			mode = m
		}
	}
	return converter.Input{
		Mode:                 mode,
		DiameterMM:           it.Diameter,
		SpacingCM:            it.Spacing,
		Legs:                 it.Legs,
		EquivalentDiameterMM: it.EquivalentDiameter,
		EquivalentLegs:       it.EquivalentLegs,
		Truncate:             it.Truncate,
	}
}

// Decode reads a project from HCL source. The filename suffix selects the
// syntax: ".hcl" for native, ".json" for HCL JSON.
func Decode(filename string, src []byte) (Project, error) {
	var p Project
	if err := hclsimple.Decode(filename, src, nil, &p); err != nil {
		return Project{}, errors.Parsing("decode project", err).WithContext("file", filepath.Base(filename))
	}
	if p.Len() == 0 {
		return Project{}, errors.Input("project has no checks").WithContext("file", filepath.Base(filename))
	}
	return p, nil
}

func Load(path string) (Project, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Project{}, errors.Wrap(errors.TypeInput, "read project file", err).WithContext("file", path)
	}
	return Decode(path, src)
}
