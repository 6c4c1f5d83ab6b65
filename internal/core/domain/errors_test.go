package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrFetchFailed", ErrFetchFailed},
		{"ErrDecodeFailed", ErrDecodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestStatusError(t *testing.T) {
	err := &StatusError{StatusCode: 503, URL: "http://example.com/data"}

	assert.Equal(t, "unexpected status 503 from http://example.com/data", err.Error())
	assert.True(t, IsStatusError(err))
}

func TestIsStatusError_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrFetchFailed, &StatusError{StatusCode: 404, URL: "u"})

	assert.True(t, IsStatusError(err))
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestIsStatusError_Other(t *testing.T) {
	assert.False(t, IsStatusError(ErrNotFound))
	assert.False(t, IsStatusError(nil))
}
