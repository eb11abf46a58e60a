package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/calc/premium/importer"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/logging"
)

func newBatchCmd(o *options) *cobra.Command {
	var (
		xlsx   string
		memory bool
	)
	c := &cobra.Command{
		Use:   "batch <project.hcl>",
		Short: "Run every check of an HCL project file",
		Long: `Run the labelled flexure, shear, anchorage, minsteel and convert blocks of a
project file and summarize the outcome.

Example project.hcl:
  project = "Tower A"

  flexure "V1" {
    bw = 20
    h = 50
    fck = 25
    fyk = 500
    mk = 8
    cover = 3
    d_prime = 4
  }

Examples:
  beamcalc batch project.hcl
  beamcalc batch project.hcl --pdf project.pdf --xlsx results.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			logging.Debug("project loaded", zap.String("file", args[0]), zap.Int("checks", p.Len()))
			return o.report(cmd, batch.Run(p), xlsx, memory)
		},
	}
	c.Flags().StringVar(&xlsx, "xlsx", "", "also write the results to this xlsx file")
	c.Flags().BoolVar(&memory, "memory", false, "print every calculation memory in text output")
	return c
}

func newImportCmd(o *options) *cobra.Command {
	var (
		xlsx   string
		memory bool
	)
	c := &cobra.Command{
		Use:   "import <beams.xlsx>",
		Short: "Run the flexure check on every row of a spreadsheet",
		Long: `Read the first sheet of a workbook, one beam per row after a header row.

Columns: label, bw, h, fck, fyk, mk, cover, d', and optionally allow_double
(yes or no). Rows that cannot be read are listed and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(errors.TypeInput, "open workbook", err).WithContext("file", args[0])
			}
			defer f.Close()

			imp, err := importer.Read(f)
			if err != nil {
				return err
			}
			for _, rej := range imp.Rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "row %d skipped: %s\n", rej.Row, rej.Message)
			}
			if len(imp.Items) == 0 {
				return errors.Input("no readable rows").WithContext("file", args[0])
			}
			return o.report(cmd, batch.Run(batch.Project{Name: imp.Sheet, Flexure: imp.Items}), xlsx, memory)
		},
	}
	c.Flags().StringVar(&xlsx, "xlsx", "", "also write the results to this xlsx file")
	c.Flags().BoolVar(&memory, "memory", false, "print every calculation memory in text output")
	return c
}

func (o *options) report(cmd *cobra.Command, rep batch.Report, xlsx string, memory bool) error {
	err := o.render(cmd, rep, func(w io.Writer) error {
		return o.writeReport(w, rep, memory)
	})
	if err != nil {
		return err
	}
	if err := o.writePDF(cmd, rep.Sheets()); err != nil {
		return err
	}
	if xlsx != "" {
		if err := writeXLSX(xlsx, rep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Spreadsheet written to %s\n", xlsx)
	}
	if rep.Errors > 0 {
		return ErrCheckFailed
	}
	return nil
}

func (o *options) writeReport(w io.Writer, rep batch.Report, memory bool) error {
	st := newStyles(w)
	if rep.Project != "" {
		fmt.Fprintln(w, st.bold.Render(rep.Project))
	}
	t := newTable("Check", "Label", "Status")
	for _, it := range rep.Items {
		t.Row(it.Check, it.Label, st.badge(it.Level, it.Status))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d success, %d warning, %d error\n", rep.Success, rep.Warnings, rep.Errors)
	fmt.Fprintln(w, st.muted.Render("run "+rep.ID.String()))
	if memory {
		fmt.Fprintln(w)
		return o.writeSheets(w, rep.Sheets())
	}
	return nil
}

func writeXLSX(path string, rep batch.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Report("create xlsx", err).WithContext("path", path)
	}
	if err := importer.Export(f, rep); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Report("write xlsx", err).WithContext("path", path)
	}
	return nil
}
