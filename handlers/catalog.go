package handlers

import (
	"net/http"

	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Catalog struct {
	DB *gorm.DB
}

type CreateRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	LocationLat float64 `json:"location_lat"`
	LocationLon float64 `json:"location_lon"`
}

// CreateRestaurant adds a restaurant to the catalog. Admin only, enforced
// by the route group.
func (h *Catalog) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		LocationLat: req.LocationLat,
		LocationLon: req.LocationLon,
		IsActive:    true,
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Restaurant name already taken"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Restaurant created",
		"restaurant_id": restaurant.ID,
	})
}

// ListRestaurants returns every restaurant. No auth needed.
func (h *Catalog) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.DB.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

type CreateDishRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

// AddDish adds a dish to a restaurant's menu.
func (h *Catalog) AddDish(c *gin.Context) {
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	dish := models.Dish{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}
	if err := h.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to add dish"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Dish added",
		"dish_id": dish.ID,
	})
}
