package routes

import (
	"restaurant-ordering-api/handlers"
	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog browsing (no auth needed)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/menu-items", handlers.ListMenu)
		public.GET("/menu-items/:id", handlers.GetMenuItem)

		// Order lifecycle info (great for docs/Postman)
		public.GET("/lifecycle", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart", handlers.AddToCart)
		customer.PUT("/cart/:id", handlers.UpdateCartQuantity)
		customer.DELETE("/cart/:id", handlers.RemoveFromCart)
		customer.DELETE("/cart", handlers.ResetCart)

		customer.POST("/orders", handlers.Checkout)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
	}

	// ── Manager routes ─────────────────────────────────────────────
	manager := r.Group("/api/manager")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleManager, models.RoleAdmin))
	{
		// Catalog management
		manager.POST("/categories", handlers.CreateCategory)
		manager.DELETE("/categories/:id", handlers.DeleteCategory)
		manager.POST("/menu-items", handlers.AddMenuItem)
		manager.PUT("/menu-items/:itemId", handlers.UpdateMenuItem)
		manager.DELETE("/menu-items/:itemId", handlers.DeleteMenuItem)

		// Order management
		manager.GET("/orders", handlers.GetAllOrders)
		manager.PUT("/orders/:id/assign", handlers.AssignDeliveryCrew)
		manager.PUT("/orders/:id/deliver", handlers.ManagerMarkDelivered)
	}

	// ── Delivery crew routes ───────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDelivery))
	{
		delivery.GET("/orders", handlers.GetMyDeliveries)
		delivery.PUT("/orders/:id/deliver", handlers.DeliverOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.DELETE("/orders/:id", handlers.AdminDeleteOrder)
		admin.PUT("/orders/:id/restore", handlers.AdminRestoreOrder)
		admin.GET("/menu-items", handlers.AdminGetAllMenuItems)
		admin.PUT("/menu-items/:id/restore", handlers.AdminRestoreMenuItem)
		admin.GET("/carts", handlers.AdminGetAllCarts)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
