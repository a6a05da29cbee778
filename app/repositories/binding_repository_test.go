package repositories

import (
	"context"
	"testing"

	"github.com/arashsoltani/zarshop/app/db/testdb"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/google/uuid"
)

func TestBindIsIdempotentUpsert(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	categoryRepo := NewCategoryRepository(db)
	bindingRepo := NewBindingRepository(db)
	ctx := context.Background()

	color := newAttribute("Color", "color")
	if err := attrRepo.Create(ctx, color); err != nil {
		t.Fatalf("create attribute: %v", err)
	}
	category := &models.Category{ID: uuid.New().String(), Name: "Watches", Slug: "watches", IsVisible: true}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := bindingRepo.Bind(ctx, category.ID, color.ID, false, 5); err != nil {
		t.Fatalf("first bind: %v", err)
	}
	if _, err := bindingRepo.Bind(ctx, category.ID, color.ID, true, 1); err != nil {
		t.Fatalf("second bind: %v", err)
	}

	var count int64
	if err := db.Model(&models.CategoryAttribute{}).Count(&count).Error; err != nil {
		t.Fatalf("count bindings: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one binding row, got %d", count)
	}

	bound, err := bindingRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("list bindings: %v", err)
	}
	if len(bound) != 1 {
		t.Fatalf("expected one bound attribute, got %d", len(bound))
	}
	if !bound[0].Required || bound[0].DisplayOrder != 1 {
		t.Fatalf("binding should reflect latest flags, got required=%v order=%d", bound[0].Required, bound[0].DisplayOrder)
	}
}

func TestListByCategoryOrdering(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	categoryRepo := NewCategoryRepository(db)
	bindingRepo := NewBindingRepository(db)
	ctx := context.Background()

	category := &models.Category{ID: uuid.New().String(), Name: "Watches", Slug: "watches", IsVisible: true}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	// Brand and Color share a display order; the name breaks the tie.
	attrs := []struct {
		name, key string
		order     int
	}{
		{"Movement", "movement", 0},
		{"Color", "color", 1},
		{"Brand", "brand", 1},
	}
	for _, a := range attrs {
		attribute := newAttribute(a.name, a.key)
		if err := attrRepo.Create(ctx, attribute); err != nil {
			t.Fatalf("create %s: %v", a.name, err)
		}
		if _, err := bindingRepo.Bind(ctx, category.ID, attribute.ID, false, a.order); err != nil {
			t.Fatalf("bind %s: %v", a.name, err)
		}
	}

	bound, err := bindingRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("list bindings: %v", err)
	}
	want := []string{"Movement", "Brand", "Color"}
	if len(bound) != len(want) {
		t.Fatalf("expected %d bound attributes, got %d", len(want), len(bound))
	}
	for i := range want {
		if bound[i].Attribute.Name != want[i] {
			t.Fatalf("position %d = %s, want %s", i, bound[i].Attribute.Name, want[i])
		}
	}
}

func TestIsBound(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	categoryRepo := NewCategoryRepository(db)
	bindingRepo := NewBindingRepository(db)
	ctx := context.Background()

	color := newAttribute("Color", "color")
	if err := attrRepo.Create(ctx, color); err != nil {
		t.Fatalf("create attribute: %v", err)
	}
	category := &models.Category{ID: uuid.New().String(), Name: "Watches", Slug: "watches", IsVisible: true}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := bindingRepo.Bind(ctx, category.ID, color.ID, false, 0); err != nil {
		t.Fatalf("bind: %v", err)
	}

	bound, err := bindingRepo.IsBound(ctx, category.ID, "color")
	if err != nil {
		t.Fatalf("is bound: %v", err)
	}
	if !bound {
		t.Fatal("color should be bound")
	}

	bound, err = bindingRepo.IsBound(ctx, category.ID, "size")
	if err != nil {
		t.Fatalf("is bound: %v", err)
	}
	if bound {
		t.Fatal("size should not be bound")
	}
}
