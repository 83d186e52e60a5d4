package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Users struct {
	DB *gorm.DB
}

// Me returns the authenticated user's record.
func (h *Users) Me(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var user models.User
	if err := h.DB.First(&user, current.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial update to the authenticated user. The password
// is changed through its own endpoint, never here.
func (h *Users) UpdateMe(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Update failed"})
		return
	}

	allowed := map[string]bool{"address": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	var user models.User
	if err := h.DB.First(&user, current.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Update failed"})
		return
	}
	if len(update) > 0 {
		if err := h.DB.Model(&user).Updates(update).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Update failed"})
			return
		}
	}
	c.JSON(http.StatusOK, user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ChangePassword replaces the user's password after verifying the old one.
func (h *Users) ChangePassword(c *gin.Context) {
	current := middleware.CurrentUser(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password change failed"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, current.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password change failed"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password change failed"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password change failed"})
		return
	}
	if err := h.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password change failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// List returns all users with skip/limit pagination. Admin only, enforced
// by the route group.
func (h *Users) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var users []models.User
	if err := h.DB.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
