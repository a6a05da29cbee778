package models

import (
	"time"

	"github.com/arashsoltani/zarshop/app/apperrors"
)

// ProductAttributeValue assigns a concrete value to one (product, attribute)
// pair. Exactly one of AttributeValueID and CustomValue is set: a reference
// into the value catalog when the text matches an enumerated value, free
// text otherwise.
type ProductAttributeValue struct {
	ID               string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID        string          `gorm:"size:36;not null;uniqueIndex:idx_product_attribute"`
	AttributeID      string          `gorm:"size:36;not null;uniqueIndex:idx_product_attribute"`
	Attribute        Attribute       `gorm:"foreignKey:AttributeID"`
	AttributeValueID *string         `gorm:"size:36;index"`
	AttributeValue   *AttributeValue `gorm:"foreignKey:AttributeValueID"`
	CustomValue      *string         `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AssignedValue is the tagged variant behind an assignment: a catalog
// reference or free text, never both. Construct one with ValueRef or
// CustomText and apply it at the write boundary.
type AssignedValue struct {
	valueRef *AttributeValue
	custom   string
	isRef    bool
}

// ValueRef builds an AssignedValue referencing a catalog value.
func ValueRef(v *AttributeValue) AssignedValue {
	return AssignedValue{valueRef: v, isRef: true}
}

// CustomText builds an AssignedValue holding free text.
func CustomText(text string) AssignedValue {
	return AssignedValue{custom: text}
}

// Apply writes the variant onto the assignment row, clearing the other arm.
// The referenced value must belong to the assignment's attribute.
func (v AssignedValue) Apply(pav *ProductAttributeValue) error {
	if v.isRef {
		if v.valueRef == nil {
			return apperrors.BadRequest("assignment needs a value reference or custom text")
		}
		if v.valueRef.AttributeID != pav.AttributeID {
			return apperrors.BadRequest("attribute value %s does not belong to attribute %s", v.valueRef.ID, pav.AttributeID)
		}
		pav.AttributeValueID = &v.valueRef.ID
		pav.AttributeValue = v.valueRef
		pav.CustomValue = nil
		return nil
	}
	if v.custom == "" {
		return apperrors.BadRequest("assignment needs a value reference or custom text")
	}
	custom := v.custom
	pav.AttributeValueID = nil
	pav.AttributeValue = nil
	pav.CustomValue = &custom
	return nil
}

// DisplayValue resolves the assignment to its display text.
func (p *ProductAttributeValue) DisplayValue() string {
	if p.AttributeValue != nil {
		return p.AttributeValue.Value
	}
	if p.CustomValue != nil {
		return *p.CustomValue
	}
	return ""
}

// Validate checks the exactly-one-of invariant on a loaded row.
func (p *ProductAttributeValue) Validate() error {
	hasRef := p.AttributeValueID != nil
	hasCustom := p.CustomValue != nil && *p.CustomValue != ""
	if hasRef == hasCustom {
		return apperrors.BadRequest("assignment must carry exactly one of a value reference or a custom value")
	}
	return nil
}
