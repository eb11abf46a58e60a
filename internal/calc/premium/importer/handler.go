package importer

import (
	"bytes"
	"net/http"

	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/respond"
)

type Handler struct{}

type FlexureImportResult struct {
	Count    int          `json:"count"`
	Rejected []RowError   `json:"rejected"`
	Report   batch.Report `json:"report"`
}

// Flexure runs every row of the uploaded workbook. With ?format=xlsx the
// report comes back as a workbook.
func (h *Handler) Flexure(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imp, err := Read(file)
	if err != nil {
		http.Error(w, err.Error(), errors.HTTPStatus(err))
		return
	}
	rep := batch.Run(batch.Project{Name: imp.Sheet, Flexure: imp.Items})

	if r.URL.Query().Get("format") == "xlsx" {
		var buf bytes.Buffer
		if err := Export(&buf, rep); err != nil {
			http.Error(w, "Report generation error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
		w.Write(buf.Bytes())
		return
	}

	respond.JSON(w, http.StatusOK, FlexureImportResult{Count: len(rep.Items), Rejected: imp.Rejected, Report: rep})
}
