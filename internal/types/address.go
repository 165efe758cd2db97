package types

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:RESTRICT;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ComunaID  uuid.UUID `gorm:"type:uuid;not null;index" json:"comuna_id"`
	Comuna    *Comuna   `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ComunaID;references:ID" json:"comuna,omitempty"`
	Street    string    `gorm:"column:street;not null" json:"street"`
	Number    string    `gorm:"column:number;not null" json:"number"`
	Extra     string    `gorm:"column:extra" json:"extra"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Address) TableName() string { return "address" }
