package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"hrboard/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
		assert.Equal(t, "Employee not found", err.Error())
	})

	t.Run("wrapped error keeps the chain", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		err := apperror.Wrap(cause, apperror.CodeUpstreamError, "Fetch failed", http.StatusBadGateway)

		assert.Equal(t, "Fetch failed: dial tcp: refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("wrapping nil yields nil", func(t *testing.T) {
		assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "n/a", http.StatusInternalServerError))
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("app error maps directly", func(t *testing.T) {
		err := apperror.New(apperror.CodeInvalidInput, "Rating is invalid", http.StatusBadRequest)

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeInvalidInput, got.Code)
		assert.Equal(t, "Rating is invalid", got.Message)
	})

	t.Run("wrapped app error is still found", func(t *testing.T) {
		inner := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
		err := apperror.Wrap(inner, apperror.CodeUpstreamError, "Lookup failed", http.StatusBadGateway)

		// errors.As finds the outermost AppError.
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadGateway, got.Status)
	})

	t.Run("unknown errors never leak internals", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq:")
	})
}

func TestValidationHelpers(t *testing.T) {
	required := apperror.RequiredField("First Name")
	assert.Equal(t, "First Name is required", required.Message)
	assert.Equal(t, http.StatusBadRequest, required.HTTPStatus)

	invalid := apperror.InvalidField("Email")
	assert.Equal(t, "Email is invalid", invalid.Message)
	assert.Equal(t, apperror.CodeInvalidInput, invalid.Code)
}
