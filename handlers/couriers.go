package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Couriers struct {
	DB       *gorm.DB
	Notifier Notifier
}

// AvailableOrders lists orders ready for delivery, meaning every order in
// status "paid". Courier only, enforced by the route group.
func (h *Couriers) AvailableOrders(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.Where("status = ?", models.StatusPaid).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// AcceptOrder assigns the order to the calling courier and moves it to
// "delivering". There is no locking: two couriers accepting the same
// order both succeed and the last write wins.
func (h *Couriers) AcceptOrder(c *gin.Context) {
	courier := middleware.CurrentUser(c)
	orderID := c.Param("order_id")

	var order models.Order
	if err := h.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
		return
	}

	if err := h.DB.Model(&order).Updates(map[string]interface{}{
		"status":     models.StatusDelivering,
		"courier_id": courier.ID,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if h.Notifier != nil {
		go func(orderID, userID uint) {
			msg := fmt.Sprintf("Order %d is out for delivery", orderID)
			if err := h.Notifier.Notify(context.Background(), userID, msg); err != nil {
				log.Printf("notification publish failed for order %d: %v", orderID, err)
			}
		}(order.ID, order.UserID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order accepted"})
}
