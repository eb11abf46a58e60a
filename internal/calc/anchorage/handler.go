package anchorage

import (
	"encoding/json"
	"net/http"

	"Beamcalc/internal/respond"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(in)
	respond.JSON(w, respond.Status(res.Status == StatusErrorInput), res)
}
