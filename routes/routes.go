package routes

import (
	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint onto the router. All collaborators are
// passed in; nothing here reaches for package-level state.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, carts handlers.CartStore, notifier handlers.Notifier) {
	auth := &handlers.Auth{DB: db, Cfg: cfg}
	users := &handlers.Users{DB: db}
	catalog := &handlers.Catalog{DB: db}
	cart := &handlers.Cart{Carts: carts}
	orders := &handlers.Orders{DB: db, Carts: carts, Notifier: notifier}
	couriers := &handlers.Couriers{DB: db, Notifier: notifier}

	v1 := r.Group("/api/v1")

	// ── Public routes ──────────────────────────────────────────────
	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)
	v1.GET("/restaurants", catalog.ListRestaurants)
	// TODO: dish creation is not role-gated while restaurant creation is
	// admin-only; decide whether this endpoint should require admin.
	v1.POST("/restaurants/dishes", catalog.AddDish)

	// ── Authenticated routes ───────────────────────────────────────
	authed := v1.Group("")
	authed.Use(middleware.AuthRequired(db, cfg))
	{
		authed.GET("/users/me", users.Me)
		authed.PATCH("/users/me", users.UpdateMe)
		authed.POST("/users/me/change-password", users.ChangePassword)

		authed.POST("/cart/add/:dish_id/:quantity", cart.Add)
		authed.GET("/cart", cart.View)

		authed.POST("/orders/create", orders.Create)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := v1.Group("")
	admin.Use(middleware.AuthRequired(db, cfg))
	{
		admin.GET("/users",
			middleware.CapabilityRequired(models.CapListUsers, "Forbidden"),
			users.List)
		admin.POST("/restaurants",
			middleware.CapabilityRequired(models.CapManageCatalog, "Only admin can create restaurants"),
			catalog.CreateRestaurant)
	}

	// ── Courier routes ─────────────────────────────────────────────
	courier := v1.Group("/couriers")
	courier.Use(
		middleware.AuthRequired(db, cfg),
		middleware.CapabilityRequired(models.CapDeliverOrders, "Only for couriers"),
	)
	{
		courier.GET("/orders", couriers.AvailableOrders)
		courier.POST("/orders/:order_id/accept", couriers.AcceptOrder)
	}
}
