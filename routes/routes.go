package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupAdminRoutes(r, cfg)

	SetupProductRoutes(r, db, cfg)

	SetupOrderRoutes(r, db, cfg)

	SetupUploadRoutes(r, cfg)

	// legacy user API, disabled
	SetupUserRoutes(r)
}
