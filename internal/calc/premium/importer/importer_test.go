package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/errors"
)

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func sample(t *testing.T) []byte {
	return workbook(t,
		[]interface{}{"V1", 20, 50, 25, 500, 8, 3, 4},
		[]interface{}{},
		[]interface{}{"V2", 20, "fifty", 25, 500, 8, 3, 4},
		[]interface{}{"V3", "20", "50", "25", "500", "16", "3", "4,5", "yes"},
		[]interface{}{"", 20, 50, 25, 500, 2, 3, 4},
		[]interface{}{"V5", 20, 50},
	)
}

func TestRead(t *testing.T) {
	imp, err := Read(bytes.NewReader(sample(t)))
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", imp.Sheet)
	require.Len(t, imp.Items, 3)

	assert.Equal(t, batch.FlexureItem{Label: "V1", Bw: 20, H: 50, Fck: 25, Fyk: 500, Mk: 8, Cover: 3, DPrime: 4}, imp.Items[0])
	assert.Equal(t, "V3", imp.Items[1].Label)
	assert.Equal(t, 4.5, imp.Items[1].DPrime)
	assert.True(t, imp.Items[1].AllowDouble)
	assert.Equal(t, "row 6", imp.Items[2].Label)

	require.Len(t, imp.Rejected, 2)
	assert.Equal(t, 4, imp.Rejected[0].Row)
	assert.Contains(t, imp.Rejected[0].Message, "column h")
	assert.Equal(t, 7, imp.Rejected[1].Row)
	assert.Contains(t, imp.Rejected[1].Message, "expected 8 columns")
}

func TestReadRejectsBadAllowDouble(t *testing.T) {
	imp, err := Read(bytes.NewReader(workbook(t, []interface{}{"V1", 20, 50, 25, 500, 8, 3, 4, "maybe"})))
	require.NoError(t, err)
	assert.Empty(t, imp.Items)
	require.Len(t, imp.Rejected, 1)
	assert.Contains(t, imp.Rejected[0].Message, "allow_double")
}

func TestReadErrors(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a workbook")))
	assert.True(t, errors.IsType(err, errors.TypeParsing))

	_, err = Read(bytes.NewReader(workbook(t)))
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestToFloat(t *testing.T) {
	for in, want := range map[string]float64{"2.5": 2.5, " 2,5 ": 2.5, "1.000,5": 0, "12": 12} {
		got, err := toFloat(in)
		if want == 0 {
			assert.Error(t, err, in)
			continue
		}
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestExport(t *testing.T) {
	imp, err := Read(bytes.NewReader(sample(t)))
	require.NoError(t, err)
	rep := batch.Run(batch.Project{Name: "Tower A", Author: "eng", Flexure: imp.Items})

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, rep))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Check", rows[0][0])
	assert.Equal(t, "V1", rows[1][1])
	assert.Equal(t, "success", rows[1][2])
	assert.Equal(t, "V3", rows[2][1])
	assert.Equal(t, "success_compression_steel", rows[2][2])
	assert.Equal(t, "warning_min_steel", rows[3][2])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Project", "Tower A"}, summary[0])
	assert.Equal(t, []string{"Run", rep.ID.String()}, summary[2])
	assert.Equal(t, []string{"Success", "2"}, summary[4])
	assert.Equal(t, []string{"Warnings", "1"}, summary[5])
}

func upload(t *testing.T, target string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "beams.xlsx")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlerJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Flexure(rec, upload(t, "/api/tools/import/flexure", sample(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out FlexureImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 3, out.Count)
	assert.Len(t, out.Rejected, 2)
	assert.Equal(t, "Sheet1", out.Report.Project)
	assert.Equal(t, 2, out.Report.Success)
}

func TestHandlerXLSX(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Flexure(rec, upload(t, "/api/tools/import/flexure?format=xlsx", sample(t)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "results.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, resultsSheet, f.GetSheetName(0))
}

func TestHandlerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Flexure(rec, httptest.NewRequest(http.MethodPost, "/api/tools/import/flexure", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	(&Handler{}).Flexure(rec, upload(t, "/api/tools/import/flexure", []byte("junk")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	(&Handler{}).Flexure(rec, upload(t, "/api/tools/import/flexure", workbook(t)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
