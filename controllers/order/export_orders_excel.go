package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohil-khan01/flipkart/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel streams all orders as an .xlsx download, one row per
// order item so totals can be cross-checked in the sheet.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Status", "CustomerName", "Mobile", "Address",
			"Payment", "PaymentRef", "ItemTitle", "ItemPrice", "ItemQty",
			"Subtotal", "Delivery", "Total", "DeliveryDate", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, it := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.OrderID)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.Customer.Name)
				row.AddCell().SetValue(o.Customer.Mobile)
				row.AddCell().SetValue(o.Customer.Address)
				row.AddCell().SetValue(o.Payment)
				row.AddCell().SetValue(o.PaymentRef)
				row.AddCell().SetValue(it.Title)
				row.AddCell().SetValue(it.Price)
				row.AddCell().SetValue(it.Qty)
				row.AddCell().SetValue(o.Subtotal)
				row.AddCell().SetValue(o.Delivery)
				row.AddCell().SetValue(o.Total)
				row.AddCell().SetValue(o.DeliveryDate.Format("2006-01-02"))
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
