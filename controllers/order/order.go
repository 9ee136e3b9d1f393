package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sohil-khan01/flipkart/models"
	"gorm.io/gorm"
)

var validate = validator.New()

// -------- Request / Response Structs --------

type OrderItemPayload struct {
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" validate:"min=0"`
	Qty       int     `json:"qty" validate:"min=1"`
}

type CustomerPayload struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

type CreateOrderRequest struct {
	Customer   CustomerPayload    `json:"customer"`
	PaymentRef string             `json:"paymentRef"`
	Items      []OrderItemPayload `json:"items" validate:"dive"`
	Subtotal   float64            `json:"subtotal"`
	Delivery   float64            `json:"delivery"`
	Total      float64            `json:"total"`
}

// OrderSummary is the tracking projection; internal-only fields never leak
// through /track.
type OrderSummary struct {
	OrderID      string             `json:"orderId"`
	CreatedAt    time.Time          `json:"createdAt"`
	DeliveryDate time.Time          `json:"deliveryDate"`
	Status       models.OrderStatus `json:"status"`
	Items        []models.OrderItem `json:"items"`
	Total        float64            `json:"total"`
}

// -------- Handlers --------

// CreateOrder places a new order. Rate-limited at the route layer. New orders
// start out pending and move to confirmed/rejected only through the admin
// endpoints.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
			return
		}

		if req.Customer.Name == "" || req.Customer.Mobile == "" || req.Customer.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer details are required"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order items are required"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order items are invalid"})
			return
		}

		orderID := MakeOrderID()
		now := nowFunc()

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: it.ProductID,
				Title:     it.Title,
				Image:     it.Image,
				Price:     it.Price,
				Qty:       it.Qty,
			})
		}

		total := req.Total
		if total == 0 {
			total = req.Subtotal + req.Delivery
		}

		order := models.Order{
			OrderID:      orderID,
			DeliveryDate: ComputeDeliveryDate(orderID, now),
			Customer: models.OrderCustomer{
				Name:    strings.TrimSpace(req.Customer.Name),
				Mobile:  NormalizeMobile(req.Customer.Mobile),
				Address: strings.TrimSpace(req.Customer.Address),
			},
			Payment:    models.PaymentUPI,
			PaymentRef: strings.TrimSpace(req.PaymentRef),
			Status:     models.OrderStatusPending,
			Items:      items,
			Subtotal:   req.Subtotal,
			Delivery:   req.Delivery,
			Total:      total,
		}

		// No retry on an order-id collision; the unique index fails the
		// create and the client retries.
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
	}
}

// GetOrderByOrderID fetches a single order by its public order id.
func GetOrderByOrderID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")

		var order models.Order
		if err := db.Preload("Items").Where("order_id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// TrackOrdersByMobile lists a customer's orders newest-first, projected down
// to the tracking summary. Query param: mobile.
func TrackOrdersByMobile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		mobile := NormalizeMobile(c.Query("mobile"))
		if len(mobile) != 10 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid 10-digit mobile number is required"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("customer_mobile = ?", mobile).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
			return
		}

		summaries := make([]OrderSummary, 0, len(orders))
		for _, o := range orders {
			summaries = append(summaries, OrderSummary{
				OrderID:      o.OrderID,
				CreatedAt:    o.CreatedAt,
				DeliveryDate: o.DeliveryDate,
				Status:       o.Status,
				Items:        o.Items,
				Total:        o.Total,
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": summaries})
	}
}

// ListOrdersAdmin returns every order, newest first, full projection.
func ListOrdersAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

// setStatus moves an order to status. Repeating the same transition is a
// no-op that still returns the order.
func setStatus(db *gorm.DB, status models.OrderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")

		var order models.Order
		if err := db.Preload("Items").Where("order_id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve order"})
			return
		}

		order.Status = status
		if err := db.Model(&models.Order{}).Where("order_id = ?", orderID).
			Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// ConfirmOrderAdmin marks an order confirmed.
func ConfirmOrderAdmin(db *gorm.DB) gin.HandlerFunc {
	return setStatus(db, models.OrderStatusConfirmed)
}

// RejectOrderAdmin marks an order rejected.
func RejectOrderAdmin(db *gorm.DB) gin.HandlerFunc {
	return setStatus(db, models.OrderStatusRejected)
}

// DeleteAllOrdersAdmin wipes every order and its item snapshots.
func DeleteAllOrdersAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
