package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttributeTypeText        = "text"
	AttributeTypeNumber      = "number"
	AttributeTypeSelect      = "select"
	AttributeTypeMultiselect = "multiselect"
	AttributeTypeBoolean     = "boolean"
	AttributeTypeColor       = "color"
	AttributeTypeSize        = "size"
)

// Attribute is a reusable product characteristic (color, size, movement
// type). Key is the stable identifier used by the filter API and must never
// change once assignments reference it.
type Attribute struct {
	ID           string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name         string           `gorm:"size:100;not null;uniqueIndex"`
	Key          string           `gorm:"size:100;not null;uniqueIndex"`
	Type         string           `gorm:"size:20;not null;default:'select'"`
	Description  string           `gorm:"type:text"`
	IsFilterable bool             `gorm:"not null;default:true"`
	DisplayOrder int              `gorm:"not null;default:0"`
	Values       []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// HasEnumeratedValues reports whether the attribute type carries a value
// catalog worth exposing in filter dropdowns.
func (a *Attribute) HasEnumeratedValues() bool {
	switch a.Type {
	case AttributeTypeSelect, AttributeTypeMultiselect, AttributeTypeColor, AttributeTypeSize:
		return true
	}
	return false
}

// AttributeValue is one admissible value in an attribute's enumerated
// domain. (attribute, value) pairs are unique.
type AttributeValue struct {
	ID           string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	AttributeID  string  `gorm:"size:36;not null;uniqueIndex:idx_attribute_value"`
	Value        string  `gorm:"size:100;not null;uniqueIndex:idx_attribute_value"`
	DisplayOrder int     `gorm:"not null;default:0"`
	ColorCode    *string `gorm:"size:7"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
