package memory

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultDigits = 2

// Printer formats numbers for one locale.
type Printer struct {
	tag language.Tag
	msg *message.Printer
}

// NewPrinter accepts a BCP 47 tag such as "en" or "pt-BR".
func NewPrinter(locale string) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Printer{tag: tag, msg: message.NewPrinter(tag)}, nil
}

func (p *Printer) Locale() string { return p.tag.String() }

// Number rounds half away from zero before formatting, so the output does not
// depend on the binary representation of v.
func (p *Printer) Number(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	r := decimal.NewFromFloat(v).Round(int32(digits)).InexactFloat64()
	return p.msg.Sprintf(fmt.Sprintf("%%.%df", digits), r)
}

// Value formats v with its unit; digits <= 0 means two decimals.
func (p *Printer) Value(v float64, digits int, unit string) string {
	if digits <= 0 {
		digits = defaultDigits
	}
	return strings.TrimSpace(p.Number(v, digits) + " " + unit)
}

// Text writes the sheet as aligned plain text.
func (p *Printer) Text(w io.Writer, s Sheet) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", s.Title, strings.Repeat("─", utf8.RuneCountInString(s.Title)))
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	if s.Message != "" {
		fmt.Fprintf(&b, "%s\n", s.Message)
	}

	if len(s.Inputs) > 0 {
		b.WriteString("\nInputs\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, q := range s.Inputs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", q.Label, q.Symbol, p.Value(q.Value, defaultDigits, q.Unit))
		}
		tw.Flush()
	}

	if len(s.Steps) > 0 {
		b.WriteString("\nCalculation\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, st := range s.Steps {
			val := "= " + p.Value(st.Value, st.Digits, st.Unit)
			if st.Note != "" {
				val += "  (" + st.Note + ")"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", st.Title, st.Expression(), val)
		}
		tw.Flush()
	}

	_, err := io.WriteString(w, b.String())
	return err
}
