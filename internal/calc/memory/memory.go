// Package memory holds the calculation memory of a check: the inputs and the
// ordered intermediate values that lead to its result, ready to be rendered as
// text or PDF.
package memory

import (
	"encoding/json"
	"math"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Quantity is a named input value.
type Quantity struct {
	Label  string  `json:"label"`
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
}

// Step is one line of the calculation: Symbol = Formula = Value Unit.
// Digits overrides the default of two decimals.
type Step struct {
	Title   string  `json:"title"`
	Symbol  string  `json:"symbol"`
	Formula string  `json:"formula,omitempty"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit,omitempty"`
	Digits  int     `json:"-"`
	Note    string  `json:"note,omitempty"`
}

type Sheet struct {
	Check   string     `json:"check"`
	Title   string     `json:"title"`
	Status  string     `json:"status"`
	Level   Level      `json:"level"`
	Message string     `json:"message"`
	Inputs  []Quantity `json:"inputs"`
	Steps   []Step     `json:"steps"`
}

// Builder appends quantities and steps in order.
type Builder struct {
	sheet Sheet
}

func New(check, title string) *Builder {
	return &Builder{sheet: Sheet{Check: check, Title: title}}
}

func (b *Builder) Outcome(status string, level Level, message string) *Builder {
	b.sheet.Status = status
	b.sheet.Level = level
	b.sheet.Message = message
	return b
}

func (b *Builder) Input(label, symbol string, value float64, unit string) *Builder {
	b.sheet.Inputs = append(b.sheet.Inputs, Quantity{Label: label, Symbol: symbol, Value: value, Unit: unit})
	return b
}

func (b *Builder) Step(title, symbol, formula string, value float64, unit string) *Builder {
	b.sheet.Steps = append(b.sheet.Steps, Step{Title: title, Symbol: symbol, Formula: formula, Value: value, Unit: unit})
	return b
}

// Precise adds a step shown with the given number of decimals.
func (b *Builder) Precise(title, symbol, formula string, value float64, unit string, digits int) *Builder {
	b.sheet.Steps = append(b.sheet.Steps, Step{Title: title, Symbol: symbol, Formula: formula, Value: value, Unit: unit, Digits: digits})
	return b
}

// Note attaches a remark to the last step.
func (b *Builder) Note(note string) *Builder {
	if n := len(b.sheet.Steps); n > 0 {
		b.sheet.Steps[n-1].Note = note
	}
	return b
}

func (b *Builder) Sheet() Sheet {
	return b.sheet
}

// Expression is "Symbol = Formula", or the symbol alone.
func (s Step) Expression() string {
	if s.Formula == "" {
		return s.Symbol
	}
	return s.Symbol + " = " + s.Formula
}

// Unbounded reports whether a step value stands for "no limit".
func (s Step) Unbounded() bool {
	return math.IsInf(s.Value, 1)
}

// MarshalJSON writes an unbounded value as null.
func (s Step) MarshalJSON() ([]byte, error) {
	type plain Step
	out := struct {
		plain
		Value *float64 `json:"value"`
	}{plain: plain(s)}
	if !s.Unbounded() {
		v := s.Value
		out.Value = &v
	}
	return json.Marshal(out)
}
