package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/config"
	productcontroller "github.com/sohil-khan01/flipkart/controllers/product"
	"github.com/sohil-khan01/flipkart/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers catalog browsing plus the admin-only
// creation/wipe/export endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	adminOnly := middleware.AdminProtect(cfg.JWTSecret, cfg.DevMode)

	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.ListProducts(db))
		products.GET("/:id", productcontroller.GetProduct(db))

		products.POST("", adminOnly, productcontroller.CreateProduct(db))
		products.POST("/bulk", adminOnly, productcontroller.CreateProductsBulk(db))
		products.DELETE("/admin", adminOnly, productcontroller.DeleteAllProducts(db))
		products.GET("/admin/export-excel", adminOnly, productcontroller.ExportProductsToExcel(db))
	}
}
