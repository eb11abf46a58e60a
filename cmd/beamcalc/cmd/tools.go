package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/loads"
	"Beamcalc/internal/calc/premium/autodesign"
	"Beamcalc/internal/calc/premium/recommend"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/logging"
)

func newRecommendCmd(o *options) *cobra.Command {
	var req recommend.Request
	c := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest bar counts for a steel area and round a stirrup spacing",
		Long: `List, for each diameter, the fewest bars (2 to 12) covering the area.

Examples:
  beamcalc recommend --as 6.33
  beamcalc recommend --as 6.33 --diameters 10,12.5,16 --stirrup-spacing 10.08`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bars, err := recommend.Bars(req.AsRequiredCM2, req.DiametersMM)
			if err != nil {
				return errors.Wrap(errors.TypeInput, "recommend bars", err)
			}
			res := recommend.Response{Bars: bars}
			if req.StirrupSpacingCM != 0 {
				s, err := recommend.Stirrups(req.StirrupSpacingCM)
				if err != nil {
					return errors.Wrap(errors.TypeInput, "recommend stirrups", err)
				}
				res.StirrupSpacingCM = &s
			}
			logging.Debug("bars recommended", zap.Int("options", len(bars)))
			err = o.render(cmd, res, func(w io.Writer) error {
				return o.writeRecommendation(w, res)
			})
			if err != nil {
				return err
			}
			return o.writePDF(cmd, nil)
		},
	}
	f := c.Flags()
	f.Float64Var(&req.AsRequiredCM2, "as", 0, "required steel area (cm²)")
	f.Float64SliceVar(&req.DiametersMM, "diameters", nil, "bar diameters to try (mm), default commercial")
	f.Float64Var(&req.StirrupSpacingCM, "stirrup-spacing", 0, "adopted stirrup spacing to round (cm)")
	required(c, "as")
	return c
}

func (o *options) writeRecommendation(w io.Writer, res recommend.Response) error {
	p, err := o.printer()
	if err != nil {
		return err
	}
	if len(res.Bars) == 0 {
		fmt.Fprintf(w, "No diameter covers the area with up to %d bars.\n", recommend.MaxBars)
	} else {
		t := newTable("Bars", "As,prov", "Use")
		for _, a := range res.Bars {
			t.Row(a.Label, p.Value(a.AsProvided, 2, "cm²"), p.Number(a.Utilisation*100, 0)+" %")
		}
		fmt.Fprintln(w, t.Render())
	}
	if res.StirrupSpacingCM != nil {
		fmt.Fprintf(w, "Stirrup spacing: %s\n", p.Value(*res.StirrupSpacingCM, 1, "cm"))
	}
	return nil
}

func newLoadsCmd(o *options) *cobra.Command {
	var in loads.Input
	c := &cobra.Command{
		Use:   "loads",
		Short: "Characteristic moment and shear of a simply supported span",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loads.Calculate(in)
			if err != nil {
				return errors.Wrap(errors.TypeInput, "loads", err)
			}
			err = o.render(cmd, res, func(w io.Writer) error {
				p, err := o.printer()
				if err != nil {
					return err
				}
				t := newTable("", "Value", "Engine units")
				t.Row("pk", p.Value(res.PkKNM, 2, "kN/m"), "")
				t.Row("pd", p.Value(res.PdKNM, 2, "kN/m"), "")
				t.Row("Mk", p.Value(res.MkKNM, 2, "kN·m"), p.Value(res.MkTfM, 3, "tf·m"))
				t.Row("Vk", p.Value(res.VkKN, 2, "kN"), p.Value(res.VkTf, 3, "tf"))
				fmt.Fprintln(w, t.Render())
				fmt.Fprintln(w, res.Notes)
				return nil
			})
			if err != nil {
				return err
			}
			return o.writePDF(cmd, nil)
		},
	}
	f := c.Flags()
	f.Float64Var(&in.SpanM, "span", 0, "span (m)")
	f.Float64Var(&in.GKNM, "g", 0, "permanent load (kN/m)")
	f.Float64Var(&in.QKNM, "q", 0, "variable load (kN/m)")
	required(c, "span", "g")
	return c
}

func newAutodesignCmd(o *options) *cobra.Command {
	var (
		in         flexure.Input
		step, maxH float64
	)
	c := &cobra.Command{
		Use:   "autodesign",
		Short: "Find the smallest height that needs no compression steel",
		Long: `Raise the section height in steps until the singly reinforced flexure
check passes. Without --h the search starts at the first step.

Example:
  beamcalc autodesign --bw 20 --h 40 --fck 25 --mk 16 --step 5 --max-h 90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := autodesign.Height(in, step, maxH)
			if err != nil {
				return err
			}
			logging.Debug("height found", zap.Float64("h_cm", res.HCM), zap.Int("tried", res.Tried))
			in.HCM = res.HCM
			sheet := flexure.Memory(in, res.Flexure)
			if o.format == formatText {
				fmt.Fprintf(cmd.OutOrStdout(), "h = %s cm after %d tries\n", strconv.FormatFloat(res.HCM, 'f', -1, 64), res.Tried)
			}
			return o.sheets(cmd, res, sheet)
		},
	}
	flexureFlags(c.Flags(), &in)
	c.Flags().Float64Var(&step, "step", autodesign.DefaultStep, "height increment (cm)")
	c.Flags().Float64Var(&maxH, "max-h", 120, "largest height to try (cm)")
	required(c, "bw", "fck", "mk")
	return c
}
