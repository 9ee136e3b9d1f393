package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/models"
	"gorm.io/gorm"
)

// DeleteAllProducts wipes the catalog. Admin only, irreversible. Existing
// orders keep their item snapshots and are untouched.
func DeleteAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Product{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
