package batch

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Beamcalc/internal/calc/anchorage"
	"Beamcalc/internal/calc/converter"
	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/memory"
	"Beamcalc/internal/calc/minsteel"
	"Beamcalc/internal/calc/shear"
	"Beamcalc/internal/logging"
)

// Item is the outcome of one labelled check. Result holds the check's own
// result type.
type Item struct {
	Check   string       `json:"check"`
	Label   string       `json:"label"`
	Status  string       `json:"status"`
	Level   memory.Level `json:"level"`
	Message string       `json:"message"`
	Result  any          `json:"result"`
	Sheet   memory.Sheet `json:"-"`
}

type Report struct {
	ID       uuid.UUID `json:"id"`
	Project  string    `json:"project"`
	Author   string    `json:"author"`
	Started  time.Time `json:"started"`
	Items    []Item    `json:"items"`
	Success  int       `json:"success"`
	Warnings int       `json:"warnings"`
	Errors   int       `json:"errors"`
}

func (r Report) Sheets() []memory.Sheet {
	out := make([]memory.Sheet, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Sheet
	}
	return out
}

func (r *Report) add(label string, res any, sheet memory.Sheet) {
	it := Item{
		Check:   sheet.Check,
		Label:   label,
		Status:  sheet.Status,
		Level:   sheet.Level,
		Message: sheet.Message,
		Result:  res,
		Sheet:   sheet,
	}
	switch it.Level {
	case memory.LevelSuccess:
		r.Success++
	case memory.LevelWarning:
		r.Warnings++
	default:
		r.Errors++
	}
	r.Items = append(r.Items, it)
	logging.Debug("batch item",
		zap.String("run", r.ID.String()),
		zap.String("check", it.Check),
		zap.String("label", label),
		zap.String("status", it.Status),
	)
}

// Run evaluates every item in declaration order, check kind by check kind.
func Run(p Project) Report {
	r := Report{
		ID:      uuid.New(),
		Project: p.Name,
		Author:  p.Author,
		Started: time.Now().UTC(),
		Items:   make([]Item, 0, p.Len()),
	}

	for _, it := range p.Flexure {
		in := it.Input()
		res := flexure.Calculate(in, it.AllowDouble)
		r.add(it.Label, res, flexure.Memory(in, res))
	}
	for _, it := range p.Shear {
		in := it.Input()
		res := shear.Calculate(in)
		r.add(it.Label, res, shear.Memory(in, res))
	}
	for _, it := range p.Anchorage {
		in := it.Input()
		res := anchorage.Calculate(in)
		r.add(it.Label, res, anchorage.Memory(in, res))
	}
	for _, it := range p.MinSteel {
		in := it.Input()
		res := minsteel.Calculate(in)
		r.add(it.Label, res, minsteel.Memory(in, res))
	}
	for _, it := range p.Convert {
		in := it.Input()
		res, ok := converter.Convert(in)
		var out any
		if ok {
			out = res
		}
		r.add(it.Label, out, converter.Memory(in, res, ok))
	}

	logging.Info("batch run finished",
		zap.String("run", r.ID.String()),
		zap.String("project", r.Project),
		zap.Int("items", len(r.Items)),
		zap.Int("errors", r.Errors),
	)
	return r
}
