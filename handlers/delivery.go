package handlers

import (
	"net/http"
	"strconv"

	"restaurant-ordering-api/middleware"
	"restaurant-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// GetMyDeliveries returns orders assigned to the logged-in crew member
func GetMyDeliveries(c *gin.Context) {
	crewID := middleware.GetUserID(c)
	filter := services.OrderFilter{DeliveryCrewID: crewID}
	if status := c.Query("status"); status != "" {
		delivered := status == "delivered"
		filter.Status = &delivered
	}

	orders, err := orderSvc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// DeliverOrder marks an assigned order as delivered
func DeliverOrder(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Order delivered", "order": order})
}
