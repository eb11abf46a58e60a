package converter

import (
	"encoding/json"
	"net/http"

	"Beamcalc/internal/respond"
)

type Handler struct{}

// Response is the result with its status flattened in.
type Response struct {
	Result
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func Respond(res Result, ok bool) Response {
	if !ok {
		return Response{Status: StatusNotComputable, Message: "Equivalent spacing could not be computed."}
	}
	return Response{Result: res, Status: StatusOK}
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, ok := Convert(in)
	respond.JSON(w, respond.Status(!ok), Respond(res, ok))
}
