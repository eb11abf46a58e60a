package flexure

import (
	"encoding/json"
	"net/http"

	"Beamcalc/internal/respond"
)

type Request struct {
	Input
	AllowDouble bool `json:"allow_double"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(req.Input, req.AllowDouble)
	respond.JSON(w, respond.Status(res.Status == StatusErrorInput), res)
}
