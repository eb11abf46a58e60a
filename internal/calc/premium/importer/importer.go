// Package importer reads flexure rows from a spreadsheet and writes batch
// reports back to one.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/errors"
)

// Columns of the import sheet, after one header row. allow_double is
// optional.
var Columns = []string{"label", "bw", "h", "fck", "fyk", "mk", "cover", "d'", "allow_double"}

const requiredColumns = 8

// RowError reports a row that could not be read. Row is 1-based as in the
// spreadsheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type Import struct {
	Sheet    string              `json:"sheet"`
	Items    []batch.FlexureItem `json:"items"`
	Rejected []RowError          `json:"rejected"`
}

// Read takes the first sheet of an xlsx workbook.
func Read(r io.Reader) (Import, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Import{}, errors.Parsing("open workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Import{}, errors.Parsing("read rows", err).WithContext("sheet", sheet)
	}
	if len(rows) < 2 {
		return Import{}, errors.Input("sheet has no data rows").WithContext("sheet", sheet)
	}

	out := Import{Sheet: sheet}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		item, err := parseRow(row)
		if err != nil {
			out.Rejected = append(out.Rejected, RowError{Row: i + 1, Message: err.Error()})
			continue
		}
		if item.Label == "" {
			item.Label = fmt.Sprintf("row %d", i+1)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (batch.FlexureItem, error) {
	if len(row) < requiredColumns {
		return batch.FlexureItem{}, fmt.Errorf("expected %d columns, got %d", requiredColumns, len(row))
	}
	var v [7]float64
	for k := range v {
		f, err := toFloat(row[k+1])
		if err != nil {
			return batch.FlexureItem{}, fmt.Errorf("column %s: %q is not a number", Columns[k+1], row[k+1])
		}
		v[k] = f
	}
	item := batch.FlexureItem{
		Label:  strings.TrimSpace(row[0]),
		Bw:     v[0],
		H:      v[1],
		Fck:    v[2],
		Fyk:    v[3],
		Mk:     v[4],
		Cover:  v[5],
		DPrime: v[6],
	}
	if len(row) > requiredColumns {
		switch strings.ToLower(strings.TrimSpace(row[requiredColumns])) {
		case "", "0", "no", "false", "n":
		case "1", "yes", "true", "y", "sim", "s":
			item.AllowDouble = true
		default:
			return batch.FlexureItem{}, fmt.Errorf("column allow_double: %q is not yes or no", row[requiredColumns])
		}
	}
	return item, nil
}

// toFloat accepts a decimal comma.
func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}
