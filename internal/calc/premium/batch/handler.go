package batch

import (
	"encoding/json"
	"net/http"

	"Beamcalc/internal/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Project
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Len() == 0 {
		http.Error(w, "Project has no checks", http.StatusUnprocessableEntity)
		return
	}
	respond.JSON(w, http.StatusOK, Run(input))
}
