package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, typ string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"type": typ,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/me", AdminProtect(testSecret, false), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "admin": true})
	})
	return r
}

func getWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminProtectMissingToken(t *testing.T) {
	r := protectedRouter()

	assert.Equal(t, http.StatusUnauthorized, getWithAuth(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, getWithAuth(r, "Bearer null").Code)
	assert.Equal(t, http.StatusUnauthorized, getWithAuth(r, "Bearer undefined").Code)
	assert.Equal(t, http.StatusUnauthorized, getWithAuth(r, "Basic abc").Code)
}

func TestAdminProtectInvalidToken(t *testing.T) {
	r := protectedRouter()

	assert.Equal(t, http.StatusUnauthorized, getWithAuth(r, "Bearer not.a.token").Code)

	expired := mintToken(t, "admin", -time.Hour)
	assert.Equal(t, http.StatusUnauthorized, getWithAuth(r, "Bearer "+expired).Code)
}

func TestAdminProtectWrongType(t *testing.T) {
	r := protectedRouter()

	user := mintToken(t, "user", time.Hour)
	assert.Equal(t, http.StatusForbidden, getWithAuth(r, "Bearer "+user).Code)
}

func TestAdminProtectValidAdmin(t *testing.T) {
	r := protectedRouter()

	admin := mintToken(t, "admin", time.Hour)
	assert.Equal(t, http.StatusOK, getWithAuth(r, "Bearer "+admin).Code)

	// quoted token from a sloppy client still passes
	assert.Equal(t, http.StatusOK, getWithAuth(r, `Bearer "`+admin+`"`).Code)
}

func TestAdminProtectQueryParamFallback(t *testing.T) {
	r := protectedRouter()

	admin := mintToken(t, "admin", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/me?token="+admin, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
