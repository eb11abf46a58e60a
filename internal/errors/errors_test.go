package errors

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "[INPUT_ERROR] row 3: bw is empty", Input("row 3: bw is empty").Error())

	err := Parsing("batch file", io.ErrUnexpectedEOF)
	assert.Equal(t, "[PARSING_ERROR] batch file: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestIsTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", Config("read beamcalc.yaml", io.EOF))

	assert.True(t, IsType(err, TypeConfig))
	assert.False(t, IsType(err, TypeInput))
	assert.False(t, IsType(io.EOF, TypeConfig))
}

func TestWithContext(t *testing.T) {
	err := Newf(TypeInput, "bad row %d", 4).WithContext("row", 4).WithContext("sheet", "Sheet1")

	assert.True(t, err.Is(TypeInput))
	assert.Equal(t, 4, err.Context["row"])
	assert.Len(t, err.Context, 2)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Input("x"), http.StatusUnprocessableEntity},
		{Parsing("x", nil), http.StatusBadRequest},
		{Auth("x"), http.StatusUnauthorized},
		{Report("x", io.EOF), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", Auth("x")), http.StatusUnauthorized},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "%v", tt.err)
	}
}
