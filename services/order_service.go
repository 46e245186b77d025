package services

import (
	"errors"
	"time"

	"restaurant-ordering-api/models"
	"restaurant-ordering-api/statemachine"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService owns the cart-to-order transition and the operational
// updates staff apply afterwards.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Checkout converts the user's active cart rows into one order with a line
// item per row, then soft-deletes the consumed rows. The whole transition
// runs in a single transaction: any failure rolls everything back.
//
// Totals are computed from the unit prices snapshotted on the cart rows at
// add-to-cart time, never from live menu prices, so Order.Total always
// equals the exact decimal sum of its line prices.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	var out models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rows []models.Cart
		if err := tx.Scopes(models.ActiveOnly(false)).
			Where("user_id = ?", userID).
			Order("id").
			Find(&rows).Error; err != nil {
			return &PersistenceError{Op: "read cart", Err: err}
		}
		if len(rows) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(rows))
		rowIDs := make([]uint, 0, len(rows))
		for _, r := range rows {
			var item models.MenuItem
			err := tx.First(&item, r.MenuItemID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &StaleCartItemError{CartID: r.ID, MenuItemID: r.MenuItemID}
			}
			if err != nil {
				return &PersistenceError{Op: "load menu item", Err: err}
			}
			if item.IsDeleted() {
				return &StaleCartItemError{CartID: r.ID, MenuItemID: item.ID, Title: item.Title}
			}

			line := r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
			total = total.Add(line)
			items = append(items, models.OrderItem{
				MenuItemID: item.ID,
				Quantity:   r.Quantity,
				CategoryID: item.CategoryID,
				UnitPrice:  r.UnitPrice,
				Price:      line,
			})
			rowIDs = append(rowIDs, r.ID)
		}

		order := models.Order{
			UserID: userID,
			Status: models.StatusPending,
			Total:  total,
			Date:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return &PersistenceError{Op: "create order", Err: err}
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return &PersistenceError{Op: "create order item", Err: err}
			}
		}

		// Guarded soft delete of the consumed rows. If a concurrent
		// checkout already consumed any of them the affected count falls
		// short and the whole transition aborts, keeping each cart row
		// convertible at most once.
		now := time.Now()
		res := tx.Model(&models.Cart{}).
			Where("id IN ? AND deleted = ?", rowIDs, false).
			Updates(map[string]interface{}{"deleted": true, "deleted_at": now})
		if res.Error != nil {
			return &PersistenceError{Op: "clear cart", Err: res.Error}
		}
		if res.RowsAffected != int64(len(rowIDs)) {
			return &PersistenceError{Op: "clear cart", Err: errors.New("cart rows consumed concurrently")}
		}

		order.Items = items
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Uint("user_id", userID).Uint("order_id", out.ID).Str("total", out.Total.String()).Msg("checkout complete")
	return &out, nil
}

// ListForUser returns the user's own orders, newest first.
func (s *OrderService) ListForUser(userID uint, includeDeleted bool) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Scopes(models.ActiveOnly(includeDeleted)).
		Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&orders).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list orders", Err: err}
	}
	return orders, nil
}

// GetForUser returns one of the user's orders with full line detail.
func (s *OrderService) GetForUser(userID, orderID uint) (*models.Order, error) {
	order, err := s.Get(orderID, false)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotFound
	}
	return order, nil
}

// Get loads one order regardless of owner.
func (s *OrderService) Get(orderID uint, includeDeleted bool) (*models.Order, error) {
	var order models.Order
	err := s.DB.Scopes(models.ActiveOnly(includeDeleted)).
		Preload("Items.MenuItem").
		Preload("DeliveryCrew").
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load order", Err: err}
	}
	return &order, nil
}

type OrderFilter struct {
	UserID         uint
	DeliveryCrewID uint
	Status         *bool
	IncludeDeleted bool
}

// List returns orders for staff views, filtered and newest first.
func (s *OrderService) List(f OrderFilter) ([]models.Order, error) {
	q := s.DB.Scopes(models.ActiveOnly(f.IncludeDeleted)).
		Preload("Items.MenuItem").
		Preload("User").
		Preload("DeliveryCrew")
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.DeliveryCrewID != 0 {
		q = q.Where("delivery_crew_id = ?", f.DeliveryCrewID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var orders []models.Order
	if err := q.Order("date desc").Find(&orders).Error; err != nil {
		return nil, &PersistenceError{Op: "list orders", Err: err}
	}
	return orders, nil
}

// AssignCrew sets or clears the delivery crew on a pending order. A nil
// crewID unassigns.
func (s *OrderService) AssignCrew(actorID uint, actorRole models.UserRole, orderID uint, crewID *uint) (*models.Order, error) {
	order, err := s.Get(orderID, false)
	if err != nil {
		return nil, err
	}

	action := statemachine.ActionAssignCrew
	if crewID == nil {
		action = statemachine.ActionUnassignCrew
	}
	if err := statemachine.CanApply(action, actorRole, actorID, order); err != nil {
		return nil, err
	}

	if crewID != nil {
		var crew models.User
		if err := s.DB.First(&crew, *crewID).Error; err != nil {
			return nil, &ValidationError{Field: "delivery_crew_id", Reason: "user does not exist"}
		}
		if crew.Role != models.RoleDelivery {
			return nil, &ValidationError{Field: "delivery_crew_id", Reason: "user is not delivery crew"}
		}
	}

	order.DeliveryCrewID = crewID
	if err := s.DB.Model(order).Select("delivery_crew_id").Updates(map[string]interface{}{"delivery_crew_id": crewID}).Error; err != nil {
		return nil, &PersistenceError{Op: "assign delivery crew", Err: err}
	}
	return order, nil
}

// MarkDelivered flips a pending order's status to delivered.
func (s *OrderService) MarkDelivered(actorID uint, actorRole models.UserRole, orderID uint) (*models.Order, error) {
	order, err := s.Get(orderID, false)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanApply(statemachine.ActionMarkDelivered, actorRole, actorID, order); err != nil {
		return nil, err
	}
	order.Status = models.StatusDelivered
	if err := s.DB.Model(order).Update("status", models.StatusDelivered).Error; err != nil {
		return nil, &PersistenceError{Op: "mark order delivered", Err: err}
	}
	return order, nil
}

// DeleteOrder soft-deletes an order. Idempotent like every soft delete.
func (s *OrderService) DeleteOrder(orderID uint) error {
	order, err := s.Get(orderID, true)
	if err != nil {
		return err
	}
	if order.IsDeleted() {
		return nil
	}
	order.MarkDeleted()
	if err := s.DB.Model(order).Select("deleted", "deleted_at").Updates(map[string]interface{}{
		"deleted": true, "deleted_at": order.DeletedAt,
	}).Error; err != nil {
		log.Error().Err(err).Uint("order_id", orderID).Msg("failed to soft-delete order")
		return &PersistenceError{Op: "soft-delete order", Err: err}
	}
	return nil
}

// RestoreOrder brings a soft-deleted order back.
func (s *OrderService) RestoreOrder(orderID uint) (*models.Order, error) {
	order, err := s.Get(orderID, true)
	if err != nil {
		return nil, err
	}
	if !order.IsDeleted() {
		return order, nil
	}
	order.Restore()
	if err := s.DB.Model(order).Select("deleted", "deleted_at").Updates(map[string]interface{}{
		"deleted": false, "deleted_at": nil,
	}).Error; err != nil {
		return nil, &PersistenceError{Op: "restore order", Err: err}
	}
	return order, nil
}
