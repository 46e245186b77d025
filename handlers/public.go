package handlers

import (
	"net/http"
	"strconv"

	"restaurant-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListCategories returns every menu category (no auth needed)
func ListCategories(c *gin.Context) {
	cats, err := catalogSvc.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(cats), "categories": cats})
}

// ListMenu returns the active menu, optionally filtered by category or
// featured flag. Soft-deleted items never appear on the public surface.
func ListMenu(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category"), 10, 32)
	featuredOnly := c.Query("featured") == "true"

	items, err := catalogSvc.ListMenuItems(uint(categoryID), featuredOnly, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// GetMenuItem returns one active menu item
func GetMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	item, err := catalogSvc.GetMenuItem(uint(id), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// GetLifecycleInfo documents the order lifecycle (great for docs/Postman)
func GetLifecycleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":      []string{"pending", "delivered"},
		"permissions": statemachine.AllPermissions(),
	})
}
