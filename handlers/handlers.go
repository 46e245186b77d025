package handlers

import (
	"errors"
	"net/http"

	"restaurant-ordering-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	catalogSvc *services.CatalogService
	cartSvc    *services.CartService
	orderSvc   *services.OrderService
)

// Setup wires the handler package to the database. Call once after
// config.InitDB.
func Setup(db *gorm.DB) {
	catalogSvc = services.NewCatalogService(db)
	cartSvc = services.NewCartService(db)
	orderSvc = services.NewOrderService(db)
}

// respondError maps the service error taxonomy onto HTTP statuses so
// callers can tell "nothing to check out" from "stale item" from "storage
// failure".
func respondError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		staleErr      *services.StaleCartItemError
		integrityErr  *services.ReferentialIntegrityError
		persistErr    *services.PersistenceError
	)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": "empty_cart"})
	case errors.As(err, &staleErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":        staleErr.Error(),
			"reason":       "stale_cart_item",
			"menu_item_id": staleErr.MenuItemID,
		})
	case errors.As(err, &integrityErr):
		c.JSON(http.StatusConflict, gin.H{"error": integrityErr.Error(), "reason": "referential_integrity"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &persistErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": persistErr.Error(), "reason": "storage_failure"})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}

// includeDeleted reads the explicit include_deleted query flag used by the
// soft-delete-aware listing endpoints.
func includeDeleted(c *gin.Context) bool {
	return c.Query("include_deleted") == "true"
}
