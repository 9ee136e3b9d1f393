package adminController

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sohil-khan01/flipkart/config"
)

var nowFunc = time.Now

// AdminLogin checks the shared PIN and issues the admin bearer token.
// A missing ADMIN_PIN is a server misconfiguration, not a wrong PIN.
func AdminLogin(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PIN any `json:"pin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}

		if cfg.AdminPIN == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "ADMIN_PIN is not configured"})
			return
		}

		pin := ""
		if req.PIN != nil {
			pin = strings.TrimSpace(fmt.Sprint(req.PIN))
		}
		if pin == "" || pin != cfg.AdminPIN {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid admin PIN"})
			return
		}

		now := nowFunc()
		claims := jwt.MapClaims{
			"type": "admin",
			"iat":  now.Unix(),
			"exp":  now.Add(cfg.AdminJWTExpire).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": signed})
	}
}

// AdminMe confirms the bearer token is a live admin credential. The real
// check happens in middleware.AdminProtect.
func AdminMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": true})
}
