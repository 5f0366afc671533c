package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-jwt-secret")

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	sub := uuid.NewString()
	exp := time.Now().Add(15 * time.Minute).UTC()

	token, err := NewAccessToken(secret, sub, true, exp)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, sub, claims.Subject)
	assert.True(t, claims.Superuser)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewAccessToken(secret, uuid.NewString(), false, time.Now().Add(time.Minute))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestAccessToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := NewAccessToken(secret, uuid.NewString(), false, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, secret)
	require.Error(t, err)
}

func TestResetToken_RoundTrip(t *testing.T) {
	t.Parallel()

	sub := uuid.NewString()

	token, err := NewResetToken(secret, sub, time.Now().Add(time.Hour))
	require.NoError(t, err)

	got, err := ResetSubjectFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, sub, got)
}

func TestResetToken_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	access, err := NewAccessToken(secret, uuid.NewString(), false, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ResetSubjectFromToken(access, secret)
	require.Error(t, err)
}
