package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order status is a two-state flag: false while the order is placed and
// pending delivery, true once delivered. Statemachine guards who may flip
// it and who may assign the delivery crew.
const (
	StatusPending   = false
	StatusDelivered = true
)

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OrderNumber    string          `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           User            `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	DeliveryCrewID *uint           `json:"delivery_crew_id"`
	DeliveryCrew   *User           `json:"delivery_crew,omitempty" gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL"`
	Status         bool            `json:"status" gorm:"not null;default:false;index"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(6,2);not null"`
	Date           time.Time       `json:"date" gorm:"not null;index"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	SoftDelete
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = uuid.NewString()
	}
	return nil
}

// OrderItem is one line of a finalized order. Category and UnitPrice are
// snapshots taken at checkout; later menu item changes never touch them.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;uniqueIndex:idx_order_item_pair"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_order_item_pair"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	CategoryID uint            `json:"category_id" gorm:"not null"`
	Category   Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(6,2);not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	SoftDelete
}
