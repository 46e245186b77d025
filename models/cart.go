package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is one staged line of a user's pending order. UnitPrice snapshots
// the menu item's price at add-to-cart time; checkout uses the snapshot,
// not the live price. At most one active row exists per (user, menu item)
// pair — enforced in the service layer because soft-deleted rows share the
// table and would collide with a unique index.
type Cart struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index:idx_cart_user_item"`
	User       User            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null;index:idx_cart_user_item"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(6,2);not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	SoftDelete
}

// BeforeSave keeps price = unit_price × quantity through every mutation.
func (c *Cart) BeforeSave(tx *gorm.DB) error {
	c.Price = c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
	return nil
}
