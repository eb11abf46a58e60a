package importer

import (
	"io"

	"github.com/xuri/excelize/v2"

	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/errors"
)

const (
	resultsSheet = "Results"
	summarySheet = "Summary"
)

// Export writes one row per item with the last calculated value of its
// memory, plus a summary sheet.
func Export(w io.Writer, r batch.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return errors.Report("rename sheet", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Report("create style", err)
	}

	header := []interface{}{"Check", "Label", "Status", "Level", "Result", "Value", "Unit", "Message"}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return errors.Report("write header", err)
	}
	f.SetCellStyle(resultsSheet, "A1", "H1", bold)

	for i, it := range r.Items {
		row := []interface{}{it.Check, it.Label, it.Status, string(it.Level), "", nil, "", it.Message}
		if n := len(it.Sheet.Steps); n > 0 {
			st := it.Sheet.Steps[n-1]
			row[4] = st.Symbol
			if !st.Unbounded() {
				row[5] = st.Value
			}
			row[6] = st.Unit
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Report("locate row", err)
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return errors.Report("write row", err).WithContext("label", it.Label)
		}
	}
	f.SetColWidth(resultsSheet, "C", "C", 26)
	f.SetColWidth(resultsSheet, "H", "H", 80)

	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Report("create summary sheet", err)
	}
	summary := [][]interface{}{
		{"Project", r.Project},
		{"Author", r.Author},
		{"Run", r.ID.String()},
		{"Started", r.Started.Format("2006-01-02 15:04:05")},
		{"Success", r.Success},
		{"Warnings", r.Warnings},
		{"Errors", r.Errors},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.Report("write summary", err)
		}
	}
	f.SetCellStyle(summarySheet, "A1", "A7", bold)

	if err := f.Write(w); err != nil {
		return errors.Report("write workbook", err)
	}
	return nil
}
