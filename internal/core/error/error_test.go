package errx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAgent(t *testing.T) {
	assert.Nil(t, WrapAgent(nil))

	inner := errors.New("boom")
	wrapped := WrapAgent(inner)
	require.NotNil(t, wrapped)
	assert.Equal(t, http.StatusBadGateway, wrapped.Status)
	assert.True(t, errors.Is(wrapped, inner))

	timedOut := WrapAgent(fmt.Errorf("call: %w", context.DeadlineExceeded))
	assert.Equal(t, http.StatusGatewayTimeout, timedOut.Status)
}

func TestAppErrorUnwrapAndAs(t *testing.T) {
	inner := errors.New("inner")
	err := New(inner, http.StatusBadRequest, InvalidInputMessage)

	assert.Contains(t, err.Error(), InvalidInputMessage)
	assert.Equal(t, inner, errors.Unwrap(err))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}
