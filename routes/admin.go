package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/config"
	adminController "github.com/sohil-khan01/flipkart/controllers/admin"
	"github.com/sohil-khan01/flipkart/middleware"
)

// SetupAdminRoutes registers PIN login and the admin session check.
func SetupAdminRoutes(r *gin.Engine, cfg config.Config) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", adminController.AdminLogin(cfg))
		admin.GET("/me", middleware.AdminProtect(cfg.JWTSecret, cfg.DevMode), adminController.AdminMe)
	}
}
