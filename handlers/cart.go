package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

type Cart struct {
	Carts CartStore
}

// Add increments the quantity of a dish in the caller's cart. Both path
// parameters must be positive. Dish existence is not verified, so a cart
// can reference a dish that was never created.
func (h *Cart) Add(c *gin.Context) {
	user := middleware.CurrentUser(c)

	dishID, err := strconv.ParseUint(c.Param("dish_id"), 10, 32)
	if err != nil || dishID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid dish ID"})
		return
	}
	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid quantity"})
		return
	}

	if err := h.Carts.Add(c.Request.Context(), user.ID, uint(dishID), quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish added to cart"})
}

// View returns the current cart mapping, dish id → quantity.
func (h *Cart) View(c *gin.Context) {
	user := middleware.CurrentUser(c)

	items, err := h.Carts.Get(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
