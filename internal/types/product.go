package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string          `gorm:"column:name;not null" json:"name"`
	Description      string          `gorm:"column:description" json:"description"`
	Price            float64         `gorm:"column:price;not null" json:"price"`
	ProductTypeID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_type_id"`
	ProductType      *ProductType    `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductTypeID;references:ID" json:"product_type,omitempty"`
	ClassificationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"classification_id"`
	Classification   *Classification `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ClassificationID;references:ID" json:"classification,omitempty"`
	StatusID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"status_id"`
	Status           *Status         `gorm:"constraint:OnDelete:RESTRICT;foreignKey:StatusID;references:ID" json:"status,omitempty"`
	Metadata         datatypes.JSON  `gorm:"column:metadata" json:"metadata,omitempty"`
	Active           bool            `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
