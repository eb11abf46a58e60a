package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"Beamcalc/internal/calc/anchorage"
	"Beamcalc/internal/calc/converter"
	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/minsteel"
	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/calc/shear"
	"Beamcalc/internal/logging"
)

func required(c *cobra.Command, names ...string) {
	for _, n := range names {
		_ = c.MarkFlagRequired(n)
	}
}

func flexureFlags(f *pflag.FlagSet, in *flexure.Input) {
	f.Float64Var(&in.BwCM, "bw", 0, "web width (cm)")
	f.Float64Var(&in.HCM, "h", 0, "section height (cm)")
	f.Float64Var(&in.FckMPa, "fck", 0, "concrete characteristic strength (MPa)")
	f.Float64Var(&in.FykMPa, "fyk", 500, "steel characteristic yield strength (MPa)")
	f.Float64Var(&in.MkTfM, "mk", 0, "characteristic bending moment (tf·m)")
	f.Float64Var(&in.CoverCM, "cover", 3, "concrete cover (cm)")
	f.Float64Var(&in.DPrimeCM, "d-prime", 4, "compression steel centroid depth d' (cm)")
}

func newFlexureCmd(o *options) *cobra.Command {
	var (
		in     flexure.Input
		double bool
	)
	c := &cobra.Command{
		Use:   "flexure",
		Short: "Size the longitudinal steel of a rectangular section",
		Long: `Size the tension steel of a rectangular section under simple bending.

When x/d exceeds the ductility limit the check fails, unless --double asks
for compression reinforcement at the limit.

Examples:
  beamcalc flexure --bw 20 --h 50 --fck 25 --mk 8
  beamcalc flexure --bw 20 --h 50 --fck 25 --mk 16 --double`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := flexure.Calculate(in, double)
			logging.Debug("flexure checked", zap.String("status", string(res.Status)), zap.Bool("double", double))
			if res.Status == flexure.StatusErrorXDLimit && !double && res.Section != nil && res.Section.X > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "hint: rerun with --double to add compression reinforcement")
			}
			return o.sheets(cmd, res, flexure.Memory(in, res))
		},
	}
	flexureFlags(c.Flags(), &in)
	c.Flags().BoolVar(&double, "double", false, "allow compression reinforcement beyond the ductility limit")
	required(c, "bw", "h", "fck", "mk")
	return c
}

func newShearCmd(o *options) *cobra.Command {
	var in shear.Input
	c := &cobra.Command{
		Use:   "shear",
		Short: "Size vertical stirrups (model I)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := shear.Calculate(in)
			logging.Debug("shear checked", zap.String("status", string(res.Status)))
			return o.sheets(cmd, res, shear.Memory(in, res))
		},
	}
	f := c.Flags()
	f.Float64Var(&in.BwCM, "bw", 0, "web width (cm)")
	f.Float64Var(&in.HCM, "h", 0, "section height (cm)")
	f.Float64Var(&in.FckMPa, "fck", 0, "concrete characteristic strength (MPa)")
	f.Float64Var(&in.FykMPa, "fyk", 500, "stirrup steel characteristic yield strength (MPa)")
	f.Float64Var(&in.VkTf, "vk", 0, "characteristic shear force (tf)")
	f.Float64Var(&in.CoverCM, "cover", 3, "concrete cover (cm)")
	f.Float64Var(&in.StirrupDiameterMM, "stirrup", 5, "stirrup diameter (mm)")
	f.IntVar(&in.Legs, "legs", 2, "stirrup legs")
	required(c, "bw", "h", "fck", "vk")
	return c
}

func newAnchorageCmd(o *options) *cobra.Command {
	var it batch.AnchorageItem
	c := &cobra.Command{
		Use:   "anchorage",
		Short: "Compute the anchorage length of a bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := it.Input()
			res := anchorage.Calculate(in)
			logging.Debug("anchorage checked", zap.String("status", string(res.Status)))
			return o.sheets(cmd, res, anchorage.Memory(in, res))
		},
	}
	f := c.Flags()
	f.Float64Var(&it.Diameter, "diameter", 0, "bar diameter (mm)")
	f.Float64Var(&it.Fck, "fck", 0, "concrete characteristic strength (MPa)")
	f.StringVar(&it.BarType, "bar", "CA-50", "bar type (CA-25, CA-50, CA-60)")
	f.StringVar(&it.Ratio, "ratio", "equal", "steel ratio (equal, custom)")
	f.Float64Var(&it.AsCalc, "as-calc", 0, "calculated steel area (cm²), custom ratio")
	f.Float64Var(&it.AsEf, "as-ef", 0, "effective steel area (cm²), custom ratio")
	f.StringVar(&it.Anchorage, "anchorage", "straight", "anchorage type (straight, hook)")
	f.StringVar(&it.Bond, "bond", "good", "bond condition (good, poor)")
	required(c, "diameter", "fck")
	return c
}

func newMinSteelCmd(o *options) *cobra.Command {
	var in minsteel.Input
	c := &cobra.Command{
		Use:   "minsteel",
		Short: "Minimum flexural steel and the moment it resists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := minsteel.Calculate(in)
			logging.Debug("minimum steel checked", zap.String("status", string(res.Status)))
			return o.sheets(cmd, res, minsteel.Memory(in, res))
		},
	}
	f := c.Flags()
	f.Float64Var(&in.BwCM, "bw", 0, "web width (cm)")
	f.Float64Var(&in.HCM, "h", 0, "section height (cm)")
	f.Float64Var(&in.FckMPa, "fck", 0, "concrete characteristic strength (MPa)")
	f.Float64Var(&in.FykMPa, "fyk", 500, "steel characteristic yield strength (MPa)")
	f.Float64Var(&in.DHRatio, "d-h", 0.9, "effective depth over height")
	required(c, "bw", "h", "fck")
	return c
}

func newConvertCmd(o *options) *cobra.Command {
	var it batch.ConvertItem
	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert a bar or stirrup spacing to another diameter",
		Long: `Keep the steel area per metre while changing the diameter, and the
legs for stirrups.

Examples:
  beamcalc convert --diameter 8 --spacing 10 --to 10 --truncate
  beamcalc convert --mode stirrup --diameter 5 --spacing 7.5 --legs 2 --to 8 --to-legs 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := it.Input()
			res, ok := converter.Convert(in)
			logging.Debug("spacing converted", zap.Bool("ok", ok))
			return o.sheets(cmd, converter.Respond(res, ok), converter.Memory(in, res, ok))
		},
	}
	f := c.Flags()
	f.StringVar(&it.Mode, "mode", "longitudinal", "longitudinal or stirrup")
	f.Float64Var(&it.Diameter, "diameter", 0, "current diameter (mm)")
	f.Float64Var(&it.Spacing, "spacing", 0, "current spacing (cm)")
	f.IntVar(&it.Legs, "legs", 2, "current stirrup legs")
	f.Float64Var(&it.EquivalentDiameter, "to", 0, "new diameter (mm)")
	f.IntVar(&it.EquivalentLegs, "to-legs", 2, "new stirrup legs")
	f.BoolVar(&it.Truncate, "truncate", false, "floor the new spacing to one decimal")
	required(c, "diameter", "spacing", "to")
	return c
}
