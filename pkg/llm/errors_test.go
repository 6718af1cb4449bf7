package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  ErrorType
		retryable bool
	}{
		{"unauthorized", errors.New("401 Unauthorized"), ErrorTypeAuth, false},
		{"invalid key", errors.New("invalid api key provided"), ErrorTypeAuth, false},
		{"model missing", errors.New("model gpt-5000 does not exist"), ErrorTypeModel, false},
		{"endpoint 404", errors.New("404 page not found"), ErrorTypeEndpoint, false},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeEndpoint, true},
		{"timeout", errors.New("context deadline exceeded"), ErrorTypeEndpoint, true},
		{"rate limit", errors.New("429 Too Many Requests"), ErrorTypeUnknown, true},
		{"server error", errors.New("502 Bad Gateway"), ErrorTypeEndpoint, true},
		{"unknown", errors.New("something odd"), ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			require.NotNil(t, classified)
			assert.Equal(t, tt.wantType, classified.Type)
			assert.Equal(t, tt.retryable, classified.Retryable)
		})
	}
}

func TestClassifyError_NilPassthrough(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_PreservesStructuredError(t *testing.T) {
	original := NewError(ErrorTypeAuth, "authentication failed", false, errors.New("401"))

	classified := ClassifyError(fmt.Errorf("request failed: %w", original))
	assert.Same(t, original, classified)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewError(ErrorTypeEndpoint, "connection failed", true, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "endpoint")
	assert.Contains(t, err.Error(), "underlying")
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeAuth, GetErrorType(NewError(ErrorTypeAuth, "x", false, nil)))
	assert.Equal(t, ErrorTypeUnknown, GetErrorType(errors.New("plain")))
}
