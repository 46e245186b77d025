package handlers

import (
	"net/http"
	"strconv"

	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// ----- Category management -----

// CreateCategory adds a new menu category (slug generated from the title)
func CreateCategory(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := catalogSvc.CreateCategory(req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": cat})
}

// DeleteCategory removes a category, rejected while menu items or order
// items still reference it
func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}
	if err := catalogSvc.DeleteCategory(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// ----- Menu management -----

// AddMenuItem creates a menu item
func AddMenuItem(c *gin.Context) {
	var req services.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := catalogSvc.CreateMenuItem(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "menu_item": item})
}

// UpdateMenuItem edits an existing menu item
func UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	var req services.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := catalogSvc.UpdateMenuItem(uint(id), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "menu_item": item})
}

// DeleteMenuItem soft-deletes a menu item; it disappears from the public
// menu but stays recoverable
func DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	if err := catalogSvc.DeleteMenuItem(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item removed from catalog"})
}

// ----- Order management -----

// GetAllOrders lists every order for staff, filterable by status
func GetAllOrders(c *gin.Context) {
	filter := services.OrderFilter{}
	if status := c.Query("status"); status != "" {
		delivered := status == "delivered"
		filter.Status = &delivered
	}
	if userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32); err == nil {
		filter.UserID = uint(userID)
	}

	orders, err := orderSvc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AssignDeliveryCrew sets (or clears, with null) the crew on a pending order
func AssignDeliveryCrew(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	var req struct {
		DeliveryCrewID *uint `json:"delivery_crew_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderSvc.AssignCrew(middleware.GetUserID(c), middleware.GetRole(c), uint(orderID), req.DeliveryCrewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery crew updated", "order": order})
}

// ManagerMarkDelivered lets a manager flip a pending order to delivered
func ManagerMarkDelivered(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	order, err := orderSvc.MarkDelivered(middleware.GetUserID(c), middleware.GetRole(c), uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order marked delivered", "order": order})
}
