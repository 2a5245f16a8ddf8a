package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"grandplaza/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "check_out must be after check_in"}

	assert.Equal(t, "check_out must be after check_in", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		message string
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, message: "invalid page parameter"},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, message: "invalid limit parameter"},
		{name: "InvalidSortParam", failure: failure.InvalidSortParam, message: "invalid sort parameter"},
		{name: "EmptyUpdateError", failure: failure.EmptyUpdateError, message: "update request cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("guest count must be positive")),
			code:    http.StatusBadRequest,
			message: "guest count must be positive",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("unknown status"),
			code:    http.StatusBadRequest,
			message: "unknown status",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("database connection failed")),
			code:    http.StatusInternalServerError,
			message: "database connection failed",
		},
		{
			name:    "internal error from string",
			err:     failure.InternalErrorFromString("Error generating PDF. Please try again."),
			code:    http.StatusInternalServerError,
			message: "Error generating PDF. Please try again.",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("Refund"),
			code:    http.StatusNotImplemented,
			message: "Refund",
		},
		{
			name:    "not found",
			err:     failure.NotFound("invoice not found"),
			code:    http.StatusNotFound,
			message: "invoice not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("booking BK004 already exists"),
			code:    http.StatusConflict,
			message: "booking BK004 already exists",
		},
		{
			name:    "unprocessable",
			err:     failure.Unprocessable("invoice has no line items"),
			code:    http.StatusUnprocessableEntity,
			message: "invoice has no line items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if assert.ErrorAs(t, tt.err, &f) {
				assert.Equal(t, tt.code, f.Code)
				assert.Equal(t, tt.message, f.Message)
			}
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to create booking: %w", failure.Conflict("duplicate")),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
