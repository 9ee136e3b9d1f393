package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sohil-khan01/flipkart/models"
	"gorm.io/gorm"
)

var validate = validator.New()

// ProductPayload is the JSON body accepted by single and bulk product creation.
type ProductPayload struct {
	Title           string            `json:"title" validate:"required"`
	Slug            string            `json:"slug"`
	SKU             string            `json:"sku"`
	Category        string            `json:"category"`
	Price           float64           `json:"price"`
	MRP             float64           `json:"mrp"`
	DiscountPercent float64           `json:"discountPercent"`
	Rating          *float64          `json:"rating"`
	RatingCount     *int              `json:"ratingCount"`
	Images          []string          `json:"images"`
	Highlights      []string          `json:"highlights"`
	Specs           map[string]string `json:"specs"`
	Offers          []string          `json:"offers"`
}

// buildProduct resolves slug and SKU against the catalog and applies defaults.
// It does not persist; the caller owns the final Create and must treat a
// duplicate-key failure there as the authoritative signal.
func buildProduct(db *gorm.DB, payload ProductPayload) (models.Product, error) {
	desired := payload.Title
	if payload.Slug != "" {
		desired = payload.Slug
	}
	slug, err := MakeUniqueSlug(columnExists(db, "slug"), desired)
	if err != nil {
		return models.Product{}, err
	}

	sku := strings.TrimSpace(payload.SKU)
	if sku == "" {
		sku, err = MakeUniqueSku(columnExists(db, "sku"), slug)
		if err != nil {
			return models.Product{}, err
		}
	}

	rating := 4.0
	if payload.Rating != nil {
		rating = *payload.Rating
	}
	ratingCount := 0
	if payload.RatingCount != nil {
		ratingCount = *payload.RatingCount
	}

	images := payload.Images
	if images == nil {
		images = []string{}
	}
	highlights := payload.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	specs := payload.Specs
	if specs == nil {
		specs = map[string]string{}
	}
	offers := payload.Offers
	if offers == nil {
		offers = []string{}
	}

	return models.Product{
		Title:           strings.TrimSpace(payload.Title),
		Slug:            slug,
		SKU:             sku,
		Category:        strings.TrimSpace(payload.Category),
		Price:           payload.Price,
		MRP:             payload.MRP,
		DiscountPercent: payload.DiscountPercent,
		Rating:          rating,
		RatingCount:     ratingCount,
		Images:          images,
		Highlights:      highlights,
		Specs:           specs,
		Offers:          offers,
	}, nil
}

// CreateProduct creates a single product. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload ProductPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}
		if err := validate.Struct(payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product title is required"})
			return
		}

		product, err := buildProduct(db, payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
	}
}
