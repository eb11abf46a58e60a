package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"Beamcalc/internal/calc/memory"
	"Beamcalc/internal/calc/report"
	"Beamcalc/internal/errors"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	colorSuccess = lipgloss.Color("#00D787")
	colorWarning = lipgloss.Color("#FFAF00")
	colorError   = lipgloss.Color("#FF5F87")
	colorMuted   = lipgloss.Color("#888888")
)

// styles binds the palette to one writer, so colors drop out when it is not
// a terminal.
type styles struct {
	level map[memory.Level]lipgloss.Style
	muted lipgloss.Style
	bold  lipgloss.Style
	width int
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		level: map[memory.Level]lipgloss.Style{
			memory.LevelSuccess: r.NewStyle().Foreground(colorSuccess).Bold(true).SetString("✔"),
			memory.LevelWarning: r.NewStyle().Foreground(colorWarning).Bold(true).SetString("▲"),
			memory.LevelError:   r.NewStyle().Foreground(colorError).Bold(true).SetString("✖"),
		},
		muted: r.NewStyle().Foreground(colorMuted),
		bold:  r.NewStyle().Bold(true),
		width: terminalWidth(w),
	}
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(f.Fd()) {
		if width, _, err := term.GetSize(f.Fd()); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

func (s styles) badge(level memory.Level, status string) string {
	st, ok := s.level[level]
	if !ok {
		st = s.level[memory.LevelError]
	}
	return st.Render(status)
}

func (s styles) rule() string {
	return s.muted.Render(strings.Repeat("─", min(s.width, 72)))
}

func (o *options) printer() (*memory.Printer, error) {
	p, err := memory.NewPrinter(o.locale)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "locale", err).WithContext("locale", o.locale)
	}
	return p, nil
}

// sheets prints res (json, yaml) or the sheets (text), writes the PDF when
// asked, and fails when any sheet is an error.
func (o *options) sheets(cmd *cobra.Command, res any, sheets ...memory.Sheet) error {
	err := o.render(cmd, res, func(w io.Writer) error {
		return o.writeSheets(w, sheets)
	})
	if err != nil {
		return err
	}
	if err := o.writePDF(cmd, sheets); err != nil {
		return err
	}
	for _, s := range sheets {
		if s.Level == memory.LevelError {
			return ErrCheckFailed
		}
	}
	return nil
}

func (o *options) render(cmd *cobra.Command, res any, text func(io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatYAML:
		return writeYAML(w, res)
	}
	return text(w)
}

func (o *options) writeSheets(w io.Writer, sheets []memory.Sheet) error {
	p, err := o.printer()
	if err != nil {
		return err
	}
	st := newStyles(w)
	for i, s := range sheets {
		if i > 0 {
			fmt.Fprintln(w, st.rule())
		}
		fmt.Fprintln(w, st.badge(s.Level, s.Status))
		if err := p.Text(w, s); err != nil {
			return err
		}
	}
	return nil
}

// writeYAML goes through JSON so the keys match the API.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Internal("encode result", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return errors.Internal("encode result", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return errors.Internal("encode yaml", err)
	}
	return enc.Close()
}

func (o *options) writePDF(cmd *cobra.Command, sheets []memory.Sheet) error {
	if o.pdf == "" {
		return nil
	}
	if len(sheets) == 0 {
		return errors.Input("this command has no calculation memory for --pdf")
	}
	f, err := os.Create(o.pdf)
	if err != nil {
		return errors.Report("create pdf", err).WithContext("path", o.pdf)
	}
	meta := report.Meta{
		Project: o.cfg.Report.Project,
		Author:  o.cfg.Report.Author,
		Locale:  o.locale,
	}
	if err := report.Write(f, meta, sheets...); err != nil {
		f.Close()
		os.Remove(o.pdf)
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Report("write pdf", err).WithContext("path", o.pdf)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "PDF written to %s\n", o.pdf)
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}
