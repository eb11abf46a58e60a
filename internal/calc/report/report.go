// Package report renders calculation memories as a PDF document.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"Beamcalc/internal/calc/memory"
	"Beamcalc/internal/errors"
)

// Meta.Locale picks the decimal separator, e.g. "en" or "pt-BR".
type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Locale  string    `json:"locale"`
}

// Core PDF fonts cover cp1252 only, so Greek symbols are spelled out.
var latin = strings.NewReplacer(
	"α", "alpha", "γ", "gamma", "ε", "eps", "η", "eta", "θ", "theta",
	"π", "pi", "ρ", "rho", "σ", "sigma", "φ", "phi",
	"∞", "inf", "≤", "<=", "≥", ">=", "─", "-",
)

var levelColor = map[memory.Level][3]int{
	memory.LevelSuccess: {22, 128, 61},
	memory.LevelWarning: {180, 100, 0},
	memory.LevelError:   {185, 28, 28},
}

const (
	colLabel = 70.0
	colExpr  = 65.0
	colValue = 45.0
	rowH     = 6.0
)

// Write renders one section per sheet.
func Write(w io.Writer, meta Meta, sheets ...memory.Sheet) error {
	if len(sheets) == 0 {
		return errors.Input("no calculations to report")
	}
	if meta.Title == "" {
		meta.Title = "Calculation Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}
	if meta.Locale == "" {
		meta.Locale = "en"
	}
	p, err := memory.NewPrinter(meta.Locale)
	if err != nil {
		return errors.Report("invalid report locale", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latin.Replace(s)) }

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator("beamcalc", false)
	pdf.SetCreationDate(meta.Date)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, text(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, text(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, s := range sheets {
		section(pdf, p, text, s)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Report("render pdf", err)
	}
	return nil
}

func section(pdf *gofpdf.Fpdf, p *memory.Printer, text func(string) string, s memory.Sheet) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text(s.Title))
	pdf.Ln(9)

	c, ok := levelColor[s.Level]
	if !ok {
		c = levelColor[memory.LevelError]
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(c[0], c[1], c[2])
	pdf.Cell(0, rowH, text("Status: "+s.Status))
	pdf.Ln(rowH)
	if s.Message != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, text(s.Message), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	if len(s.Inputs) > 0 {
		header(pdf, "Inputs")
		pdf.SetFont("Helvetica", "", 9)
		for _, q := range s.Inputs {
			pdf.CellFormat(colLabel, rowH, text(q.Label), "B", 0, "L", false, 0, "")
			pdf.CellFormat(colExpr, rowH, text(q.Symbol), "B", 0, "L", false, 0, "")
			pdf.CellFormat(colValue, rowH, text(p.Value(q.Value, 0, q.Unit)), "B", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	if len(s.Steps) > 0 {
		header(pdf, "Calculation")
		pdf.SetFont("Helvetica", "", 9)
		for _, st := range s.Steps {
			label := st.Title
			if st.Note != "" {
				label += " (" + st.Note + ")"
			}
			pdf.CellFormat(colLabel, rowH, text(label), "B", 0, "L", false, 0, "")
			pdf.CellFormat(colExpr, rowH, text(st.Expression()), "B", 0, "L", false, 0, "")
			pdf.CellFormat(colValue, rowH, text(p.Value(st.Value, st.Digits, st.Unit)), "B", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(8)
}

func header(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 232, 236)
	pdf.CellFormat(colLabel+colExpr+colValue, rowH, title, "", 1, "L", true, 0, "")
}
