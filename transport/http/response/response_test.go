package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"grandplaza/shared/constant"
	"grandplaza/shared/failure"
	"grandplaza/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "failure keeps its code", err: failure.NotFound("room not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"room not found"}`},
		{name: "plain error is internal", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "BK004"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"BK004"}}`, rec.Body.String())
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithFile(rec, "invoice-INV001.txt", constant.ContentTypePlainText, []byte("INVOICE"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="invoice-INV001.txt"`, rec.Header().Get(constant.RequestHeaderDisposition))
	assert.Equal(t, "7", rec.Header().Get("Content-Length"))
	assert.Equal(t, "INVOICE", rec.Body.String())
}
