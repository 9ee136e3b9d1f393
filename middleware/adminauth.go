package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminProtect guards admin-only routes. Absent, malformed or expired tokens
// get 401; a structurally valid token whose type claim is not "admin" gets
// 403. Failure detail is only exposed in dev mode. Websocket clients cannot
// set headers, so a token query param is accepted as a fallback.
func AdminProtect(secret string, devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearer(c.GetHeader("Authorization"))
		if tokenString == "" {
			tokenString = strings.TrimSpace(c.Query("token"))
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, no token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			msg := "Not authorized, token failed"
			if devMode && err != nil {
				msg = "Not authorized, token failed: " + err.Error()
			}
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		if typ, _ := claims["type"].(string); typ != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized as admin"})
			c.Abort()
			return
		}

		c.Set("admin", true)
		c.Next()
	}
}

// extractBearer pulls the token out of an Authorization header. Browsers that
// stored the token badly send wrapping quotes or the literal strings "null"
// and "undefined"; those count as no token.
func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	token := strings.Trim(strings.TrimSpace(parts[1]), `"`)
	if token == "null" || token == "undefined" {
		return ""
	}
	return token
}
