package models

import "time"

type Product struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string            `gorm:"not null" json:"title"`
	Slug            string            `gorm:"uniqueIndex;not null" json:"slug"`
	SKU             string            `gorm:"uniqueIndex" json:"sku"`
	Category        string            `json:"category"`
	Price           float64           `json:"price"`
	MRP             float64           `json:"mrp"`
	DiscountPercent float64           `json:"discountPercent"`
	Rating          float64           `json:"rating"`
	RatingCount     int               `json:"ratingCount"`
	Images          []string          `gorm:"serializer:json" json:"images"`
	Highlights      []string          `gorm:"serializer:json" json:"highlights"`
	Specs           map[string]string `gorm:"serializer:json" json:"specs"`
	Offers          []string          `gorm:"serializer:json" json:"offers"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
