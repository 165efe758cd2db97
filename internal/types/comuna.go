package types

import (
	"time"

	"github.com/google/uuid"
)

// Comuna belongs to a region; together they locate an address. Name is unique
// within its region, not globally.
type Comuna struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RegionID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_comuna_region_name" json:"region_id"`
	Region    *Region   `gorm:"constraint:OnDelete:RESTRICT;foreignKey:RegionID;references:ID" json:"region,omitempty"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:ux_comuna_region_name" json:"name"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Comuna) TableName() string { return "comuna" }
