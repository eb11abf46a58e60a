package memory

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Sheet {
	return New("demo", "Demo check").
		Outcome("warning_min_steel", LevelWarning, "Minimum governs.").
		Input("Width", "bw", 20, "cm").
		Step("Area", "As", "bw·h/100", 1.5, "cm²").
		Precise("Ratio", "ρ", "", 0.00205197, "", 5).Note("low").
		Step("Spacing", "s", "", math.Inf(1), "cm").
		Sheet()
}

func TestBuilder(t *testing.T) {
	s := sample()

	assert.Equal(t, "demo", s.Check)
	assert.Equal(t, LevelWarning, s.Level)
	require.Len(t, s.Inputs, 1)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, 5, s.Steps[1].Digits)
	assert.Equal(t, "low", s.Steps[1].Note)
	assert.Empty(t, s.Steps[0].Note)
	assert.True(t, s.Steps[2].Unbounded())
}

func TestNoteWithoutSteps(t *testing.T) {
	s := New("x", "X").Note("ignored").Sheet()
	assert.Empty(t, s.Steps)
}

func TestStepJSON(t *testing.T) {
	raw, err := json.Marshal(sample())
	require.NoError(t, err)

	var out struct {
		Steps []map[string]any `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Steps, 3)
	assert.Equal(t, 1.5, out.Steps[0]["value"])
	assert.Nil(t, out.Steps[2]["value"])
	assert.Contains(t, out.Steps[2], "value")
	assert.NotContains(t, out.Steps[0], "Digits")
}

func TestPrinterNumber(t *testing.T) {
	en, err := NewPrinter("en")
	require.NoError(t, err)
	br, err := NewPrinter("pt-BR")
	require.NoError(t, err)

	tests := []struct {
		v      float64
		digits int
		en, br string
	}{
		{1.5, 2, "1.50", "1,50"},
		{2.675, 2, "2.68", "2,68"},
		{0.00205197, 5, "0.00205", "0,00205"},
		{15.6, 1, "15.6", "15,6"},
		{math.Inf(1), 2, "∞", "∞"},
		{math.NaN(), 2, "NaN", "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.en, en.Number(tt.v, tt.digits), "en %v", tt.v)
		assert.Equal(t, tt.br, br.Number(tt.v, tt.digits), "pt-BR %v", tt.v)
	}
	assert.Equal(t, "1,234.50", en.Number(1234.5, 2))
	assert.Equal(t, "pt-BR", br.Locale())
}

func TestNewPrinterRejectsBadLocale(t *testing.T) {
	_, err := NewPrinter("not a locale!")
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	p, err := NewPrinter("en")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Text(&buf, sample()))
	out := buf.String()

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Demo check", lines[0])
	assert.Equal(t, strings.Repeat("─", len("Demo check")), lines[1])
	assert.Equal(t, "Status: warning_min_steel", lines[2])
	assert.Equal(t, "Minimum governs.", lines[3])
	assert.Contains(t, out, "As = bw·h/100")
	assert.Contains(t, out, "= 1.50 cm²")
	assert.Contains(t, out, "= 0.00205  (low)")
	assert.Contains(t, out, "= ∞ cm")
}
