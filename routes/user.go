package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/sohil-khan01/flipkart/controllers/user"
)

// SetupUserRoutes keeps the legacy user API reachable but disabled.
func SetupUserRoutes(r *gin.Engine) {
	users := r.Group("/api/users")
	users.Any("/*path", userControllers.Disabled)
}
