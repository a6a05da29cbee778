package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              string                  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name            string                  `gorm:"size:100;not null"`
	Slug            string                  `gorm:"size:255;not null;uniqueIndex"`
	Sku             string                  `gorm:"size:100;index"`
	Description     string                  `gorm:"type:text"`
	Price           decimal.Decimal         `gorm:"type:decimal(16,0);not null"`
	PriceUSD        *decimal.Decimal        `gorm:"type:decimal(16,2)"`
	Stock           int                     `gorm:"not null"`
	Weight          decimal.Decimal         `gorm:"type:decimal(10,2)"`
	CategoryID      string                  `gorm:"size:36;not null;index"`
	Category        Category                `gorm:"foreignKey:CategoryID"`
	IsActive        bool                    `gorm:"not null;default:true"`
	IsNewArrival    bool                    `gorm:"not null;default:false"`
	Tags            []Tag                   `gorm:"many2many:product_tags;"`
	AttributeValues []ProductAttributeValue `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

type Tag struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex"`
	Products  []Product `gorm:"many2many:product_tags;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
