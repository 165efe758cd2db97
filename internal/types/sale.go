package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sale is the aggregate root. Total is derived from its items and is never
// written from caller input; the sale service recomputes it on every mutation
// that touches an item.
type Sale struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User             *User           `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"user,omitempty"`
	PaymentMethodID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"payment_method_id"`
	PaymentMethod    *PaymentMethod  `gorm:"constraint:OnDelete:RESTRICT;foreignKey:PaymentMethodID;references:ID" json:"payment_method,omitempty"`
	ShippingMethodID uuid.UUID       `gorm:"type:uuid;not null;index" json:"shipping_method_id"`
	ShippingMethod   *ShippingMethod `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ShippingMethodID;references:ID" json:"shipping_method,omitempty"`
	StatusID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"status_id"`
	Status           *Status         `gorm:"constraint:OnDelete:RESTRICT;foreignKey:StatusID;references:ID" json:"status,omitempty"`
	PurchaseDate     datatypes.Date  `gorm:"column:purchase_date;not null" json:"purchase_date"`
	PurchaseTime     datatypes.Time  `gorm:"column:purchase_time;not null" json:"purchase_time"`
	Total            float64         `gorm:"column:total;not null" json:"total"`
	Items            []SaleItem      `gorm:"constraint:OnDelete:CASCADE;foreignKey:SaleID;references:ID" json:"items,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

func (Sale) TableName() string { return "sale" }

// SaleItem carries a derived subtotal (quantity * unit price). Subtotal is
// never accepted as input; it is recomputed whenever quantity, unit price or
// product changes.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice float64   `gorm:"column:unit_price;not null" json:"unit_price"`
	Subtotal  float64   `gorm:"column:subtotal;not null" json:"subtotal"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SaleItem) TableName() string { return "sale_item" }
