package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/models"
	"gorm.io/gorm"
)

type BulkCreateRequest struct {
	Items []ProductPayload `json:"items"`
}

// CreateProductsBulk creates products one at a time. Bulk import is NOT
// all-or-nothing: a validation failure at item N leaves items 0..N-1
// committed, and the response names the failing item alongside everything
// already created.
func CreateProductsBulk(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product items are required"})
			return
		}

		created := make([]models.Product, 0, len(req.Items))
		fail := func(status int, msg string) {
			c.JSON(status, gin.H{
				"success": false,
				"message": msg,
				"data":    gin.H{"count": len(created), "items": created},
			})
		}

		for i, payload := range req.Items {
			if err := validate.Struct(payload); err != nil {
				fail(http.StatusBadRequest, fmt.Sprintf("item %d: title is required", i))
				return
			}
			if payload.Category == "" {
				fail(http.StatusBadRequest, fmt.Sprintf("item %d: category is required", i))
				return
			}
			if len(payload.Images) == 0 {
				fail(http.StatusBadRequest, fmt.Sprintf("item %d: at least one image is required", i))
				return
			}

			product, err := buildProduct(db, payload)
			if err != nil {
				fail(http.StatusInternalServerError, fmt.Sprintf("item %d: failed to create product", i))
				return
			}
			if err := db.Create(&product).Error; err != nil {
				fail(http.StatusInternalServerError, fmt.Sprintf("item %d: failed to create product", i))
				return
			}
			created = append(created, product)
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    gin.H{"count": len(created), "items": created},
		})
	}
}
