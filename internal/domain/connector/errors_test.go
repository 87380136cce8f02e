package connector

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestError(t *testing.T) {
	t.Run("carries status and body", func(t *testing.T) {
		err := NewRequestError(500, "<ENVELOPE>server error</ENVELOPE>")

		assert.Equal(t, 500, err.StatusCode)
		assert.Contains(t, err.Error(), "HTTP 500")
		assert.Contains(t, err.Error(), "server error")
	})

	t.Run("truncates long bodies", func(t *testing.T) {
		err := NewRequestError(502, strings.Repeat("x", 5000))

		assert.Len(t, err.Body, 200)
	})

	t.Run("matches ErrRequestFailed", func(t *testing.T) {
		err := NewRequestError(404, "not found")

		assert.ErrorIs(t, err, ErrRequestFailed)
	})
}

func TestWrapRequestError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapRequestError(cause)

	assert.Equal(t, 0, err.StatusCode)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRequestError_AsTarget(t *testing.T) {
	var wrapped error = NewRequestError(500, "boom")

	var reqErr *RequestError
	require.ErrorAs(t, wrapped, &reqErr)
	assert.Equal(t, 500, reqErr.StatusCode)
}
