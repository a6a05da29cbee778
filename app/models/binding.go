package models

import "time"

// CategoryAttribute binds an attribute to a category, making it applicable
// (and optionally required) for that category's products. One row per
// (category, attribute) pair; rebinding updates the flags in place.
type CategoryAttribute struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID   string    `gorm:"size:36;not null;uniqueIndex:idx_category_attribute"`
	AttributeID  string    `gorm:"size:36;not null;uniqueIndex:idx_category_attribute"`
	Attribute    Attribute `gorm:"foreignKey:AttributeID"`
	Required     bool      `gorm:"not null;default:false"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BoundAttribute is an attribute as seen through a category binding.
type BoundAttribute struct {
	Attribute    Attribute
	Required     bool
	DisplayOrder int
}
