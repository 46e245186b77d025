package handlers

import (
	"net/http"
	"strconv"

	"restaurant-ordering-api/config"
	"restaurant-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// The admin surface exposes every entity read/write with a soft-delete-aware
// listing: deleted rows are hidden unless the caller passes
// include_deleted=true explicitly.

// AdminGetAllOrders returns all orders with full detail — admin only
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Scopes(models.ActiveOnly(includeDeleted(c))).
		Preload("Items.MenuItem").Preload("User").Preload("DeliveryCrew")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status == "delivered")
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	query.Order("date desc").Find(&orders)

	// Admin dashboard: counts by state plus revenue over delivered orders
	summary := map[string]int{"pending": 0, "delivered": 0}
	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status == models.StatusDelivered {
			summary["delivered"]++
			revenue = revenue.Add(o.Total)
		} else {
			summary["pending"]++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": revenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllMenuItems lists the catalog, soft-deleted entries included on
// request
func AdminGetAllMenuItems(c *gin.Context) {
	items, err := catalogSvc.ListMenuItems(0, false, includeDeleted(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// AdminGetAllCarts lists every cart row, soft-deleted included on request
func AdminGetAllCarts(c *gin.Context) {
	var rows []models.Cart
	query := config.DB.Scopes(models.ActiveOnly(includeDeleted(c))).Preload("MenuItem")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	query.Find(&rows)
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "carts": rows})
}

// AdminRestoreMenuItem recovers a soft-deleted menu item
func AdminRestoreMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	item, err := catalogSvc.RestoreMenuItem(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item restored", "menu_item": item})
}

// AdminDeleteOrder soft-deletes an order
func AdminDeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	if err := orderSvc.DeleteOrder(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// AdminRestoreOrder recovers a soft-deleted order
func AdminRestoreOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	order, err := orderSvc.RestoreOrder(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order restored", "order": order})
}
