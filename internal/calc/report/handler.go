package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Beamcalc/internal/calc/anchorage"
	"Beamcalc/internal/calc/converter"
	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/memory"
	"Beamcalc/internal/calc/minsteel"
	"Beamcalc/internal/calc/shear"
	"Beamcalc/internal/errors"
)

// Request carries the report header and any subset of the checks.
type Request struct {
	Meta
	Flexure   *flexure.Request `json:"flexure,omitempty"`
	Shear     *shear.Input     `json:"shear,omitempty"`
	Anchorage *anchorage.Input `json:"anchorage,omitempty"`
	MinSteel  *minsteel.Input  `json:"minsteel,omitempty"`
	Convert   *converter.Input `json:"convert,omitempty"`
}

// Sheets runs the requested checks in a fixed order.
func (r Request) Sheets() []memory.Sheet {
	var out []memory.Sheet
	if in := r.Flexure; in != nil {
		out = append(out, flexure.Memory(in.Input, flexure.Calculate(in.Input, in.AllowDouble)))
	}
	if in := r.Shear; in != nil {
		out = append(out, shear.Memory(*in, shear.Calculate(*in)))
	}
	if in := r.Anchorage; in != nil {
		out = append(out, anchorage.Memory(*in, anchorage.Calculate(*in)))
	}
	if in := r.MinSteel; in != nil {
		out = append(out, minsteel.Memory(*in, minsteel.Calculate(*in)))
	}
	if in := r.Convert; in != nil {
		res, ok := converter.Convert(*in)
		out = append(out, converter.Memory(*in, res, ok))
	}
	return out
}

// Handler.Defaults fill an empty author, project or locale.
type Handler struct {
	Defaults Meta
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Author == "" {
		req.Author = h.Defaults.Author
	}
	if req.Project == "" {
		req.Project = h.Defaults.Project
	}
	if req.Locale == "" {
		req.Locale = h.Defaults.Locale
	}

	var buf bytes.Buffer
	if err := Write(&buf, req.Meta, req.Sheets()...); err != nil {
		http.Error(w, err.Error(), errors.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}
