package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgctx "FitHub/pkg/context"
	"FitHub/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(secret), func(c *gin.Context) {
		uid, err := pkgctx.GetUserID(c)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter([]byte("s"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r := newAuthRouter([]byte("s"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsRefreshToken(t *testing.T) {
	secret := []byte("s")
	token, err := jwt.GenerateToken(secret, 7, "alice", "refresh", time.Minute)
	require.NoError(t, err)

	r := newAuthRouter(secret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthResolvesCaller(t *testing.T) {
	secret := []byte("s")
	token, err := jwt.GenerateToken(secret, 7, "alice", "access", time.Minute)
	require.NoError(t, err)

	r := newAuthRouter(secret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":7`)
}
