package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/arashsoltani/zarshop/app/db/fakers"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
	"github.com/arashsoltani/zarshop/app/services"
	"gorm.io/gorm"
)

// DBSeed fills an empty database with a small demo catalog: a watch shop
// with gendered subcategories, a shared attribute registry and a handful of
// products carrying both catalog-referenced and custom attribute values.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()

	categoryRepo := repositories.NewCategoryRepository(db)
	attributeRepo := repositories.NewAttributeRepository(db)
	attributeValueRepo := repositories.NewAttributeValueRepository(db)
	bindingRepo := repositories.NewBindingRepository(db)
	productRepo := repositories.NewProductRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	attributeSvc := services.NewAttributeService(attributeRepo, assignmentRepo, bindingRepo, productRepo)

	watches := fakers.CategoryFaker("Watches", "", nil)
	if err := categoryRepo.Create(ctx, watches); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	leaves := []*models.Category{
		fakers.CategoryFaker("Men's Watches", models.SectionMen, watches),
		fakers.CategoryFaker("Women's Watches", models.SectionWomen, watches),
		fakers.CategoryFaker("Unisex Watches", models.SectionUnisex, watches),
		fakers.CategoryFaker("Books", models.SectionGeneral, nil),
	}
	for _, c := range leaves {
		if err := categoryRepo.Create(ctx, c); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	color := fakers.AttributeFaker("Color", "color", models.AttributeTypeColor)
	size := fakers.AttributeFaker("Case Size", "case_size", models.AttributeTypeSize)
	movement := fakers.AttributeFaker("Movement", "movement", models.AttributeTypeSelect)
	brand := fakers.AttributeFaker("Brand", "brand", models.AttributeTypeText)
	for _, a := range []*models.Attribute{color, size, movement, brand} {
		if err := attributeRepo.Create(ctx, a); err != nil {
			return fmt.Errorf("seed attributes: %w", err)
		}
	}

	black := "#000000"
	gold := "#FFD700"
	values := []*models.AttributeValue{
		fakers.AttributeValueFaker(color, "Black", 0, &black),
		fakers.AttributeValueFaker(color, "Gold", 1, &gold),
		fakers.AttributeValueFaker(size, "38mm", 0, nil),
		fakers.AttributeValueFaker(size, "42mm", 1, nil),
		fakers.AttributeValueFaker(movement, "Quartz", 0, nil),
		fakers.AttributeValueFaker(movement, "Automatic", 1, nil),
	}
	for _, v := range values {
		if err := attributeValueRepo.Create(ctx, v); err != nil {
			return fmt.Errorf("seed attribute values: %w", err)
		}
	}

	for _, leaf := range leaves[:3] {
		for i, a := range []*models.Attribute{movement, color, size, brand} {
			required := a == movement
			if _, err := bindingRepo.Bind(ctx, leaf.ID, a.ID, required, i); err != nil {
				return fmt.Errorf("seed bindings: %w", err)
			}
		}
	}

	assignments := map[string]string{
		"color":    "Black",
		"movement": "Automatic",
		"brand":    "Seastar", // no catalog entry, stored as custom text
	}
	for _, leaf := range leaves[:3] {
		for i := 0; i < 3; i++ {
			product := fakers.ProductFaker(leaf)
			if err := productRepo.Create(ctx, product); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
			for key, value := range assignments {
				if _, err := attributeSvc.SetAttributeValue(ctx, product.ID, key, value); err != nil {
					return fmt.Errorf("seed assignments: %w", err)
				}
			}
		}
	}

	tag := fakers.TagFaker("bestseller")
	if err := db.Create(tag).Error; err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}

	log.Println("Seeded demo catalog:", len(leaves), "leaf categories, 4 attributes, 9 products")
	return nil
}
