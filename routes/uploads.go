package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/config"
	uploadsController "github.com/sohil-khan01/flipkart/controllers/uploads"
	"github.com/sohil-khan01/flipkart/middleware"
)

// SetupUploadRoutes registers the admin image upload endpoint.
func SetupUploadRoutes(r *gin.Engine, cfg config.Config) {
	uploads := r.Group("/api/uploads")
	uploads.Use(middleware.AdminProtect(cfg.JWTSecret, cfg.DevMode))
	{
		uploads.POST("/images", uploadsController.UploadImages(cfg.UploadsDir))
	}
}
