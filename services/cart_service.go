package services

import (
	"errors"

	"restaurant-ordering-api/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService manages a user's staged order lines.
type CartService struct {
	DB *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{DB: db}
}

type AddToCartInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// Get returns the user's active cart rows and their subtotal.
func (s *CartService) Get(userID uint, includeDeleted bool) ([]models.Cart, decimal.Decimal, error) {
	var rows []models.Cart
	err := s.DB.Scopes(models.ActiveOnly(includeDeleted)).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, decimal.Zero, &PersistenceError{Op: "list cart", Err: err}
	}
	subtotal := decimal.Zero
	for _, r := range rows {
		subtotal = subtotal.Add(r.Price)
	}
	return rows, subtotal, nil
}

// Add stages a menu item in the user's cart, snapshotting its current
// price. A second add of the same item merges into the existing active row
// so the (user, menu item) pair stays unique.
func (s *CartService) Add(userID uint, in *AddToCartInput) (*models.Cart, error) {
	if in.Quantity < 1 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	var item models.MenuItem
	err := s.DB.Scopes(models.ActiveOnly(false)).First(&item, in.MenuItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load menu item", Err: err}
	}

	var row models.Cart
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Cart
		err := tx.Scopes(models.ActiveOnly(false)).
			Where("user_id = ? AND menu_item_id = ?", userID, item.ID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.Quantity += in.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return &PersistenceError{Op: "merge cart row", Err: err}
			}
			row = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = models.Cart{
				UserID:     userID,
				MenuItemID: item.ID,
				Quantity:   in.Quantity,
				UnitPrice:  item.Price,
			}
			if err := tx.Create(&row).Error; err != nil {
				return &PersistenceError{Op: "create cart row", Err: err}
			}
			return nil
		default:
			return &PersistenceError{Op: "look up cart row", Err: err}
		}
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateQuantity changes the quantity on one of the user's active cart
// rows; the line price is recomputed from the stored unit price snapshot.
// Quantity zero removes the row.
func (s *CartService) UpdateQuantity(userID, cartID uint, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	row, err := s.get(userID, cartID)
	if err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, s.Remove(userID, cartID)
	}
	row.Quantity = quantity
	if err := s.DB.Save(row).Error; err != nil {
		return nil, &PersistenceError{Op: "update cart quantity", Err: err}
	}
	return row, nil
}

// Remove soft-deletes one of the user's cart rows. Unlike ResetCart, a
// storage failure here surfaces to the caller after being logged.
func (s *CartService) Remove(userID, cartID uint) error {
	row, err := s.get(userID, cartID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// already gone — delete stays idempotent
			return nil
		}
		return err
	}
	row.MarkDeleted()
	if err := s.DB.Save(row).Error; err != nil {
		log.Error().Err(err).Uint("user_id", userID).Uint("cart_id", cartID).Msg("failed to soft-delete cart row")
		return &PersistenceError{Op: "soft-delete cart row", Err: err}
	}
	return nil
}

// ResetCart soft-deletes a single cart row as best-effort cleanup. It warns
// before attempting the delete and swallows any failure after logging it;
// callers always see it succeed. This deliberately diverges from the strict
// surface-the-error policy used everywhere else.
func (s *CartService) ResetCart(row *models.Cart) {
	log.Warn().Uint("user_id", row.UserID).Uint("cart_id", row.ID).Msg("soft-deleting cart row")
	row.MarkDeleted()
	if err := s.DB.Save(row).Error; err != nil {
		log.Error().Err(err).Uint("user_id", row.UserID).Uint("cart_id", row.ID).Msg("error deleting cart")
	}
}

// ResetAll applies ResetCart to every active row the user has.
func (s *CartService) ResetAll(userID uint) error {
	rows, _, err := s.Get(userID, false)
	if err != nil {
		return err
	}
	for i := range rows {
		s.ResetCart(&rows[i])
	}
	return nil
}

func (s *CartService) get(userID, cartID uint) (*models.Cart, error) {
	var row models.Cart
	err := s.DB.Scopes(models.ActiveOnly(false)).
		Where("user_id = ?", userID).
		First(&row, cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load cart row", Err: err}
	}
	return &row, nil
}
