package handlers

import (
	"net/http"
	"strconv"

	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// GetCart returns the caller's active cart rows with their subtotal
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rows, subtotal, err := cartSvc.Get(userID, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(rows),
		"cart":     rows,
		"subtotal": subtotal,
	})
}

// AddToCart stages a menu item, snapshotting its current price
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req services.AddToCartInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := cartSvc.Add(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart_row": row})
}

// UpdateCartQuantity changes the quantity of one cart row; zero removes it
func UpdateCartQuantity(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cartID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart row id"})
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := cartSvc.UpdateQuantity(userID, uint(cartID), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Cart row removed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "cart_row": row})
}

// RemoveFromCart soft-deletes one cart row
func RemoveFromCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cartID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart row id"})
		return
	}
	if err := cartSvc.Remove(userID, uint(cartID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart row removed"})
}

// ResetCart best-effort clears the caller's whole cart
func ResetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := cartSvc.ResetAll(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart reset"})
}

// Checkout converts the caller's cart into an order
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	order, err := orderSvc.Checkout(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := orderSvc.ListForUser(userID, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order's full detail
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	order, err := orderSvc.GetForUser(userID, uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
