package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("test-secret", 7*24*time.Hour, "dailywage-backend")
	id := Identity{ID: 42, Name: "Ravi", Phone: "9876543210", Role: "seeker"}

	t.Run("Round trip returns the same identity", func(t *testing.T) {
		token, expiresAt, err := m.Issue(id)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

		got, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, id, *got)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour, "dailywage-backend")
		token, _, err := other.Issue(id)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		old := NewTokenManager("test-secret", 7*24*time.Hour, "dailywage-backend")
		old.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
		token, _, err := old.Issue(id)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Other algorithms are rejected", func(t *testing.T) {
		claims := Claims{
			Identity: id,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "dailywage-backend",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "s3cret!"))
}
