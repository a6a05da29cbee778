package repositories

import (
	"context"
	"testing"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/db/testdb"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/google/uuid"
)

func newAttribute(name, key string) *models.Attribute {
	return &models.Attribute{
		ID:           uuid.New().String(),
		Name:         name,
		Key:          key,
		Type:         models.AttributeTypeSelect,
		IsFilterable: true,
	}
}

func TestAttributeCreateDuplicateKeyConflicts(t *testing.T) {
	db := testdb.Open(t)
	repo := NewAttributeRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newAttribute("Color", "color")); err != nil {
		t.Fatalf("create attribute: %v", err)
	}

	err := repo.Create(ctx, newAttribute("Colour", "color"))
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate key, got %v", err)
	}
}

func TestAttributeGetByKeyNotFound(t *testing.T) {
	db := testdb.Open(t)
	repo := NewAttributeRepository(db)

	_, err := repo.GetByKey(context.Background(), "nope")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAttributeValuesOrdered(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	valueRepo := NewAttributeValueRepository(db)
	ctx := context.Background()

	size := newAttribute("Size", "size")
	if err := attrRepo.Create(ctx, size); err != nil {
		t.Fatalf("create attribute: %v", err)
	}

	for _, v := range []struct {
		text  string
		order int
	}{{"XL", 3}, {"S", 1}, {"M", 2}, {"L", 2}} {
		err := valueRepo.Create(ctx, &models.AttributeValue{
			ID:           uuid.New().String(),
			AttributeID:  size.ID,
			Value:        v.text,
			DisplayOrder: v.order,
		})
		if err != nil {
			t.Fatalf("create value %s: %v", v.text, err)
		}
	}

	values, err := valueRepo.ListByAttribute(ctx, size.ID)
	if err != nil {
		t.Fatalf("list values: %v", err)
	}

	got := make([]string, 0, len(values))
	for _, v := range values {
		got = append(got, v.Value)
	}
	want := []string{"S", "L", "M", "XL"} // display order, then value for ties
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestAttributeValueDuplicateConflicts(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	valueRepo := NewAttributeValueRepository(db)
	ctx := context.Background()

	color := newAttribute("Color", "color")
	if err := attrRepo.Create(ctx, color); err != nil {
		t.Fatalf("create attribute: %v", err)
	}

	value := &models.AttributeValue{ID: uuid.New().String(), AttributeID: color.ID, Value: "Blue"}
	if err := valueRepo.Create(ctx, value); err != nil {
		t.Fatalf("create value: %v", err)
	}

	dup := &models.AttributeValue{ID: uuid.New().String(), AttributeID: color.ID, Value: "Blue"}
	if err := valueRepo.Create(ctx, dup); !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate value, got %v", err)
	}
}

func TestAttributeKeyImmutableOnceReferenced(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	categoryRepo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	assignmentRepo := NewAssignmentRepository(db)
	ctx := context.Background()

	color := newAttribute("Color", "color")
	if err := attrRepo.Create(ctx, color); err != nil {
		t.Fatalf("create attribute: %v", err)
	}

	// renaming and re-keying is fine while nothing references the attribute
	color.Key = "colour"
	if err := attrRepo.Update(ctx, color); err != nil {
		t.Fatalf("update unreferenced attribute: %v", err)
	}

	category := &models.Category{ID: uuid.New().String(), Name: "Watches", Slug: "watches", IsVisible: true}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := &models.Product{ID: uuid.New().String(), Name: "Diver", Slug: "diver", CategoryID: category.ID, IsActive: true}
	if err := productRepo.Create(ctx, product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := assignmentRepo.SetValue(ctx, product.ID, color, "Blue"); err != nil {
		t.Fatalf("set value: %v", err)
	}

	color.Key = "shade"
	if err := attrRepo.Update(ctx, color); !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict for key change on referenced attribute, got %v", err)
	}

	// other fields stay editable
	color.Key = "colour"
	color.Description = "case color"
	if err := attrRepo.Update(ctx, color); err != nil {
		t.Fatalf("update referenced attribute without key change: %v", err)
	}
}

func TestAttributeDeleteCascades(t *testing.T) {
	db := testdb.Open(t)
	attrRepo := NewAttributeRepository(db)
	valueRepo := NewAttributeValueRepository(db)
	bindingRepo := NewBindingRepository(db)
	categoryRepo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	assignmentRepo := NewAssignmentRepository(db)
	ctx := context.Background()

	color := newAttribute("Color", "color")
	if err := attrRepo.Create(ctx, color); err != nil {
		t.Fatalf("create attribute: %v", err)
	}
	if err := valueRepo.Create(ctx, &models.AttributeValue{ID: uuid.New().String(), AttributeID: color.ID, Value: "Blue"}); err != nil {
		t.Fatalf("create value: %v", err)
	}

	category := &models.Category{ID: uuid.New().String(), Name: "Watches", Slug: "watches", IsVisible: true}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := bindingRepo.Bind(ctx, category.ID, color.ID, false, 0); err != nil {
		t.Fatalf("bind: %v", err)
	}

	product := &models.Product{ID: uuid.New().String(), Name: "Diver", Slug: "diver", CategoryID: category.ID, IsActive: true}
	if err := productRepo.Create(ctx, product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := assignmentRepo.SetValue(ctx, product.ID, color, "Blue"); err != nil {
		t.Fatalf("set value: %v", err)
	}

	if err := attrRepo.Delete(ctx, color.ID); err != nil {
		t.Fatalf("delete attribute: %v", err)
	}

	if _, err := attrRepo.GetByKey(ctx, "color"); !apperrors.IsNotFound(err) {
		t.Fatalf("attribute should be gone, got %v", err)
	}
	values, err := valueRepo.ListByAttribute(ctx, color.ID)
	if err != nil {
		t.Fatalf("list values: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("values should cascade, %d left", len(values))
	}
	assignments, err := assignmentRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("list assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("assignments should cascade, %d left", len(assignments))
	}
	bound, err := bindingRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("list bindings: %v", err)
	}
	if len(bound) != 0 {
		t.Fatalf("bindings should cascade, %d left", len(bound))
	}
}
