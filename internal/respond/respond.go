// Package respond writes JSON bodies for the HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"Beamcalc/internal/logging"
)

// JSON encodes v before anything reaches w. A value that cannot be encoded
// is logged and answered with 500, never with a partial body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Error("encode response", zap.Int("status", status), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// Status is 422 for a failed check and 200 otherwise.
func Status(failed bool) int {
	if failed {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}
