package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/shop-api/internal/apperr"
)

func TestBcrypt_RoundTrip(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}
	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, h.Compare(hash, "hunter2"))
	assert.False(t, h.Compare(hash, "hunter3"))
}

func TestTokens_IssueVerify(t *testing.T) {
	tok := NewTokens("secret", 24*time.Hour)
	raw, exp, err := tok.Issue(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	id, err := tok.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestTokens_RejectsExpiredAndForeign(t *testing.T) {
	tok := NewTokens("secret", time.Hour)
	tok.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, _, err := tok.Issue(7)
	require.NoError(t, err)
	_, err = tok.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokens("other", time.Hour)
	raw, _, err = other.Issue(7)
	require.NoError(t, err)
	_, err = NewTokens("secret", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tok := NewTokens("secret", time.Hour)
	raw, _, err := tok.Issue(9)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Required(tok), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CustomerID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":9}`, w.Body.String())

	var seen error
	r2 := gin.New()
	r2.Use(func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			seen = c.Errors.Last().Err
		}
	})
	r2.GET("/me", Required(tok), func(c *gin.Context) { c.Status(http.StatusOK) })
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token "+raw)
	r2.ServeHTTP(w, req)
	assert.True(t, apperr.Is(seen, apperr.KindUnauthorized))
}
