package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Disabled responds for the legacy user API. Account features were switched
// off when the storefront moved to PIN-based admin access; the route stays
// registered so old clients get a clear answer instead of a 404.
func Disabled(c *gin.Context) {
	c.JSON(http.StatusGone, gin.H{"success": false, "message": "User APIs are disabled"})
}
