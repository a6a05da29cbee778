package fakers

import (
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func AttributeFaker(name, key, attrType string) *models.Attribute {
	return &models.Attribute{
		ID:           uuid.New().String(),
		Name:         name,
		Key:          key,
		Type:         attrType,
		IsFilterable: true,
	}
}

func AttributeValueFaker(attribute *models.Attribute, value string, order int, colorCode *string) *models.AttributeValue {
	return &models.AttributeValue{
		ID:           uuid.New().String(),
		AttributeID:  attribute.ID,
		Value:        value,
		DisplayOrder: order,
		ColorCode:    colorCode,
	}
}

func TagFaker(name string) *models.Tag {
	return &models.Tag{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug.Make(name),
	}
}
