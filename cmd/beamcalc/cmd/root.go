// Package cmd provides the CLI commands for beamcalc.
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Beamcalc/internal/config"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/logging"
)

// ErrCheckFailed marks a run whose result is an error status. It exits with
// code 2 and prints nothing more, the result already says why.
var ErrCheckFailed = stderrors.New("check failed")

type options struct {
	cfgFile string
	format  string
	pdf     string
	locale  string
	verbose bool
	cfg     config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "beamcalc",
		Short: "Reinforced concrete beam checks (NBR 6118)",
		Long: `beamcalc sizes and checks reinforced concrete beams following NBR 6118.

Every check prints its calculation memory: the inputs, each intermediate
value with its formula, and the outcome.

Examples:
  beamcalc flexure --bw 20 --h 50 --fck 25 --fyk 500 --mk 8 --cover 3 --d-prime 4
  beamcalc shear --bw 20 --h 50 --fck 25 --fyk 500 --vk 10 --cover 3
  beamcalc batch project.hcl --pdf project.pdf
  beamcalc serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.init()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&o.cfgFile, "config", "", "YAML config file")
	f.StringVarP(&o.format, "format", "f", "text", "output format (text, json, yaml)")
	f.StringVar(&o.pdf, "pdf", "", "also write the calculation memory to this PDF file")
	f.StringVar(&o.locale, "locale", "", "number locale, e.g. en or pt-BR (default from config)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newFlexureCmd(o),
		newShearCmd(o),
		newAnchorageCmd(o),
		newMinSteelCmd(o),
		newConvertCmd(o),
		newRecommendCmd(o),
		newLoadsCmd(o),
		newAutodesignCmd(o),
		newBatchCmd(o),
		newImportCmd(o),
		newServeCmd(o),
		newTokenCmd(o),
		newVersionCmd(),
	)
	return root
}

func (o *options) init() error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Config("initialize logging", err)
	}
	switch o.format {
	case formatText, formatJSON, formatYAML:
	default:
		return errors.Newf(errors.TypeInput, "unknown format %q (want text, json or yaml)", o.format)
	}
	if o.locale == "" {
		o.locale = cfg.Report.Locale
	}
	o.cfg = cfg
	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, ErrCheckFailed):
		return 2
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}
