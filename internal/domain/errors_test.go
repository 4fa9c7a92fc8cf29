package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		typ     ErrorType
		message string
	}{
		{
			name:    "validation error",
			err:     NewValidationError("missing required parameters: %s", "domain"),
			typ:     ErrorTypeValidation,
			message: "missing required parameters: domain",
		},
		{
			name:    "not found error",
			err:     NewNotFoundError("entity %d not found", 42),
			typ:     ErrorTypeNotFound,
			message: "entity 42 not found",
		},
		{
			name:    "data source error hides the cause",
			err:     NewDataSourceError(cause),
			typ:     ErrorTypeDataSource,
			message: "data source unavailable",
		},
		{
			name:    "unclassified error is internal",
			err:     errors.New("boom"),
			typ:     ErrorTypeInternal,
			message: "internal server error",
		},
		{
			name:    "wrapped classified error keeps its type",
			err:     fmt.Errorf("building tree: %w", NewDataSourceError(cause)),
			typ:     ErrorTypeDataSource,
			message: "data source unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, TypeOf(tt.err))
			assert.Equal(t, tt.message, PublicMessage(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial timeout")
	err := NewDataSourceError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "data source unavailable: dial timeout", err.Error())
}
