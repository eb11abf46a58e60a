package autodesign

import (
	"encoding/json"
	"net/http"

	"Beamcalc/internal/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Height(input.Input, input.StepCM, input.MaxHeightCM)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
