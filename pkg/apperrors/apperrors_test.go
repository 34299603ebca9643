package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"gotodo/pkg/apperrors"
)

func TestKindMappings(t *testing.T) {
	tests := []struct {
		name     string
		kind     apperrors.Kind
		status   int
		severity apperrors.Severity
	}{
		{"unclassified", apperrors.Unclassified, http.StatusInternalServerError, apperrors.SeverityError},
		{"not found", apperrors.NotFound, http.StatusNotFound, apperrors.SeverityInfo},
		{"validation", apperrors.Validation, http.StatusBadRequest, apperrors.SeverityInfo},
		{"conflict", apperrors.Conflict, http.StatusConflict, apperrors.SeverityWarning},
		{"unauthorized", apperrors.Unauthorized, http.StatusUnauthorized, apperrors.SeverityInfo},
		{"business rule", apperrors.BusinessRule, http.StatusUnprocessableEntity, apperrors.SeverityWarning},
		{"exhausted", apperrors.Exhausted, http.StatusServiceUnavailable, apperrors.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.HTTPStatus())
			assert.Equal(t, tt.severity, tt.kind.Severity())
		})
	}
}

func TestKindUnknownValueFallsBack(t *testing.T) {
	unknown := apperrors.Kind(200)

	assert.Equal(t, http.StatusInternalServerError, unknown.HTTPStatus())
	assert.Equal(t, apperrors.SeverityError, unknown.Severity())
	assert.Equal(t, "unclassified", unknown.String())
}

func TestKindOf(t *testing.T) {
	t.Run("classified error reports its kind", func(t *testing.T) {
		err := apperrors.ConflictError("email is already in use")
		assert.Equal(t, apperrors.Conflict, apperrors.KindOf(err))
	})

	t.Run("wrapped classified error keeps its kind", func(t *testing.T) {
		err := fmt.Errorf("handling request: %w", apperrors.NotFoundError("todo not found"))
		assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
	})

	t.Run("plain error is unclassified", func(t *testing.T) {
		assert.Equal(t, apperrors.Unclassified, apperrors.KindOf(errors.New("boom")))
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.InternalError("registration failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, apperrors.Unclassified, err.Kind())
	assert.Contains(t, err.Error(), "registration failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationErrorDetails(t *testing.T) {
	err := apperrors.ValidationError("password validation failed",
		"password must be at least 6 characters long")

	assert.Equal(t, apperrors.Validation, err.Kind())
	assert.Equal(t, "password validation failed", err.Message())
	assert.Equal(t, []string{"password must be at least 6 characters long"}, err.Details())
}

func TestWithDetailsDoesNotMutateOriginal(t *testing.T) {
	original := apperrors.ValidationError("invalid input")
	extended := original.WithDetails("first", "second")

	assert.Empty(t, original.Details())
	assert.Equal(t, []string{"first", "second"}, extended.Details())
}

func TestAsError(t *testing.T) {
	t.Run("extracts classified error", func(t *testing.T) {
		err := apperrors.UnauthorizedError("invalid email or password")

		appErr, ok := apperrors.AsError(fmt.Errorf("login: %w", err))
		assert.True(t, ok)
		assert.Equal(t, apperrors.Unauthorized, appErr.Kind())
	})

	t.Run("plain error is not classified", func(t *testing.T) {
		appErr, ok := apperrors.AsError(errors.New("boom"))
		assert.False(t, ok)
		assert.Nil(t, appErr)
	})
}
