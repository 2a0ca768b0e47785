package transport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/vault-transport/httpclient"
)

func TestNormalize(t *testing.T) {
	assert.NoError(t, normalize(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, normalize(plain))

	cause := httpclient.NewTimeoutError(errors.New("i/o timeout"))
	wrapped := fmt.Errorf("vault call: %w", cause)
	out := normalize(wrapped)

	var te *Error
	require.ErrorAs(t, out, &te)
	assert.Equal(t, wrapped.Error(), te.Message)
	assert.Equal(t, int(httpclient.ErrCodeTimeout), te.Code)
	assert.Same(t, wrapped, te.Err)
	assert.True(t, httpclient.IsTimeout(out))
}

func TestNormalize_Idempotent(t *testing.T) {
	first := normalize(httpclient.NewConnectionError(errors.New("reset")))
	assert.Same(t, first, normalize(first))

	wrapped := fmt.Errorf("outer: %w", first)
	assert.Same(t, wrapped, normalize(wrapped))
}

func TestIsTransportError(t *testing.T) {
	assert.False(t, IsTransportError(nil))
	assert.False(t, IsTransportError(errors.New("x")))
	assert.True(t, IsTransportError(&Error{Message: "m"}))
	assert.True(t, IsTransportError(fmt.Errorf("w: %w", &Error{Message: "m"})))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	e := &Error{Message: "cause", Code: 2, Err: cause}
	assert.Equal(t, "cause", e.Error())
	assert.ErrorIs(t, e, cause)
}
