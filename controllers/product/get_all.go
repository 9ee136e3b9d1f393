package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/models"
	"gorm.io/gorm"
)

// ListProducts returns the whole catalog, newest first.
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
	}
}
