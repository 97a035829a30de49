package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaute-shop/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	_, ok := store.Tokens()
	assert.False(t, ok, "empty store has no tokens")

	tokens := models.TokenPair{Access: "acc", Refresh: "ref"}
	require.NoError(t, store.Save(tokens))

	got, ok := store.Tokens()
	require.True(t, ok)
	assert.Equal(t, tokens, got)

	require.NoError(t, store.Clear())
	_, ok = store.Tokens()
	assert.False(t, ok)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func signedTestToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	token := signedTestToken(t, time.Hour)

	exp, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	_, err = TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestNeedsRefresh(t *testing.T) {
	assert.False(t, NeedsRefresh(signedTestToken(t, time.Hour), time.Minute))
	assert.True(t, NeedsRefresh(signedTestToken(t, 30*time.Second), time.Minute))
	assert.True(t, NeedsRefresh("garbage", time.Minute))
}
