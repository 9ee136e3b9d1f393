package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/config"
	orderControllers "github.com/sohil-khan01/flipkart/controllers/order"
	"github.com/sohil-khan01/flipkart/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers order intake (rate limited), tracking and the
// admin lifecycle endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	adminOnly := middleware.AdminProtect(cfg.JWTSecret, cfg.DevMode)
	limiter := middleware.NewRateLimiter(cfg.OrderRateLimitPerMin, time.Minute)

	orders := r.Group("/api/orders")
	{
		orders.POST("", limiter.Middleware(), orderControllers.CreateOrder(db))
		orders.GET("/track", orderControllers.TrackOrdersByMobile(db))

		orders.GET("/admin", adminOnly, orderControllers.ListOrdersAdmin(db))
		orders.GET("/admin/ws", adminOnly, orderControllers.OrderFeedHandler)
		orders.GET("/admin/export-excel", adminOnly, orderControllers.ExportOrdersToExcel(db))
		orders.PATCH("/admin/:orderId/confirm", adminOnly, orderControllers.ConfirmOrderAdmin(db))
		orders.PATCH("/admin/:orderId/reject", adminOnly, orderControllers.RejectOrderAdmin(db))
		orders.DELETE("/admin", adminOnly, orderControllers.DeleteAllOrdersAdmin(db))

		orders.GET("/:orderId", orderControllers.GetOrderByOrderID(db))
	}
}
