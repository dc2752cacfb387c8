package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	j := New("test-secret", time.Minute)

	sessionID := uuid.NewString()
	ctx := context.Background()

	token, err := j.Generate(ctx, sessionID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetSessionID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.NewString())
	assert.NoError(t, err)

	_, err = j.GetSessionID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_TamperedToken(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.NewString())
	assert.NoError(t, err)

	// Flip a character in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	_, err = j.GetSessionID(ctx, tampered)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	signer := New("secret-a", time.Minute)
	verifier := New("secret-b", time.Minute)
	ctx := context.Background()

	token, err := signer.Generate(ctx, uuid.NewString())
	assert.NoError(t, err)

	_, err = verifier.GetSessionID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	_, err := j.GetSessionID(ctx, "invalid.token.string")
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	t.Run("cookie present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "token-value"})

		token, err := j.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "token-value", token)
	})

	t.Run("cookie missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})

	t.Run("cookie empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: ""})

		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})
}
