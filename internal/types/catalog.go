package types

import (
	"time"

	"github.com/google/uuid"
)

// CatalogFields is the shape shared by every lookup entity in the catalog
// (genre, platform, payment method, ...). Each kind embeds it and maps to its
// own table; Name is unique case-insensitively within the kind.
type CatalogFields struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Active      bool      `gorm:"column:active;not null;default:true" json:"active"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (f *CatalogFields) CatalogData() *CatalogFields { return f }

// CatalogRecord is satisfied by the pointer type of every catalog kind.
type CatalogRecord interface {
	CatalogData() *CatalogFields
}

type Genre struct {
	CatalogFields
}

func (Genre) TableName() string { return "genre" }

type Platform struct {
	CatalogFields
}

func (Platform) TableName() string { return "platform" }

type Developer struct {
	CatalogFields
}

func (Developer) TableName() string { return "developer" }

type DeveloperType struct {
	CatalogFields
}

func (DeveloperType) TableName() string { return "developer_type" }

type Company struct {
	CatalogFields
}

func (Company) TableName() string { return "company" }

type CompanyType struct {
	CatalogFields
}

func (CompanyType) TableName() string { return "company_type" }

type Classification struct {
	CatalogFields
}

func (Classification) TableName() string { return "classification" }

type ProductType struct {
	CatalogFields
}

func (ProductType) TableName() string { return "product_type" }

type ShippingMethod struct {
	CatalogFields
}

func (ShippingMethod) TableName() string { return "shipping_method" }

type PaymentMethod struct {
	CatalogFields
}

func (PaymentMethod) TableName() string { return "payment_method" }

type Status struct {
	CatalogFields
}

func (Status) TableName() string { return "status" }

type Region struct {
	CatalogFields
}

func (Region) TableName() string { return "region" }
