package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Orders struct {
	DB       *gorm.DB
	Carts    CartStore
	Notifier Notifier
}

// Create materializes the caller's cart into a persisted order:
//
//  1. Read the cart; an empty cart is rejected and no order is created.
//  2. Commit the order row with status "created".
//  3. Copy every cart line into an order-item row and commit them.
//  4. Clear the cart.
//  5. Return the new order id.
//
// The order row and the item rows are committed in two separate round
// trips. If the item insert fails, the items roll back and the error
// surfaces as 404, but the already-committed order row stays behind and
// the cart keeps its contents.
func (h *Orders) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	cartItems, err := h.Carts.Get(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cart is empty"})
		return
	}

	order := models.Order{UserID: user.ID, Status: models.StatusCreated}
	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	tx := h.DB.Begin()
	for dishID, quantity := range cartItems {
		id, err := strconv.ParseUint(dishID, 10, 32)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		item := models.OrderItem{
			OrderID:  order.ID,
			DishID:   uint(id),
			Quantity: quantity,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	if err := h.Carts.Clear(ctx, user.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}

	if h.Notifier != nil {
		go func(orderID, userID uint) {
			msg := fmt.Sprintf("Order %d created", orderID)
			if err := h.Notifier.Notify(context.Background(), userID, msg); err != nil {
				log.Printf("notification publish failed for order %d: %v", orderID, err)
			}
		}(order.ID, user.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id": order.ID,
		"message":  "Order created successfully",
	})
}
