package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Sign("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := &Codec{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := expired.Sign("alice@example.com")
	require.NoError(t, err)

	_, err = NewCodec("test-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewCodec("test-secret").Sign("alice@example.com")
	require.NoError(t, err)

	_, err = NewCodec("other-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
