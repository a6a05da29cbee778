package fakers

import (
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func CategoryFaker(name, section string, parent *models.Category) *models.Category {
	category := &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		Section:   section,
		IsVisible: true,
	}
	if parent != nil {
		category.ParentID = &parent.ID
	}
	return category
}
