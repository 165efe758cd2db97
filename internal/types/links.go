package types

import (
	"time"

	"github.com/google/uuid"
)

// Bridge relations. Each pair type has its own table and a composite unique
// index on the two foreign ids, enforced at the storage layer so concurrent
// link calls cannot both succeed.

type LinkRecord interface {
	PairIDs() (leftID, rightID uuid.UUID)
}

type ProductGenreLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_genre" json:"product_id"`
	GenreID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_genre" json:"genre_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ProductGenreLink) TableName() string { return "product_genre" }

func (l *ProductGenreLink) PairIDs() (uuid.UUID, uuid.UUID) { return l.ProductID, l.GenreID }

type ProductPlatformLink struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_platform" json:"product_id"`
	PlatformID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_platform" json:"platform_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (ProductPlatformLink) TableName() string { return "product_platform" }

func (l *ProductPlatformLink) PairIDs() (uuid.UUID, uuid.UUID) { return l.ProductID, l.PlatformID }

type ProductDeveloperLink struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_developer" json:"product_id"`
	DeveloperID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_developer" json:"developer_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (ProductDeveloperLink) TableName() string { return "product_developer" }

func (l *ProductDeveloperLink) PairIDs() (uuid.UUID, uuid.UUID) { return l.ProductID, l.DeveloperID }

type ProductCompanyLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_company" json:"product_id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_product_company" json:"company_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ProductCompanyLink) TableName() string { return "product_company" }

func (l *ProductCompanyLink) PairIDs() (uuid.UUID, uuid.UUID) { return l.ProductID, l.CompanyID }

type CompanyCompanyTypeLink struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_company_company_type" json:"company_id"`
	CompanyTypeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_company_company_type" json:"company_type_id"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (CompanyCompanyTypeLink) TableName() string { return "company_company_type" }

func (l *CompanyCompanyTypeLink) PairIDs() (uuid.UUID, uuid.UUID) { return l.CompanyID, l.CompanyTypeID }

type DeveloperDeveloperTypeLink struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeveloperID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_developer_developer_type" json:"developer_id"`
	DeveloperTypeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_developer_developer_type" json:"developer_type_id"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (DeveloperDeveloperTypeLink) TableName() string { return "developer_developer_type" }

func (l *DeveloperDeveloperTypeLink) PairIDs() (uuid.UUID, uuid.UUID) {
	return l.DeveloperID, l.DeveloperTypeID
}
