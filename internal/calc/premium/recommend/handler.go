package recommend

import (
	"encoding/json"
	"net/http"

	"Beamcalc/internal/respond"
)

type Handler struct{}

type Request struct {
	AsRequiredCM2    float64   `json:"as_required_cm2"`
	DiametersMM      []float64 `json:"diameters_mm"`
	StirrupSpacingCM float64   `json:"stirrup_spacing_cm"`
}

type Response struct {
	Bars             []Arrangement `json:"bars"`
	StirrupSpacingCM *float64      `json:"stirrup_spacing_cm,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Request
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	bars, err := Bars(input.AsRequiredCM2, input.DiametersMM)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	res := Response{Bars: bars}
	if input.StirrupSpacingCM != 0 {
		s, err := Stirrups(input.StirrupSpacingCM)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		res.StirrupSpacingCM = &s
	}
	respond.JSON(w, http.StatusOK, res)
}
