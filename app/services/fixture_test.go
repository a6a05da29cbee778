package services

import (
	"context"
	"testing"

	"github.com/arashsoltani/zarshop/app/db/testdb"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fixture wires the repositories and services against one in-memory
// database, with helpers for building catalog rows.
type fixture struct {
	t              *testing.T
	db             *gorm.DB
	categoryRepo   repositories.CategoryRepositoryImpl
	productRepo    repositories.ProductRepositoryImpl
	attributeRepo  repositories.AttributeRepositoryImpl
	valueRepo      repositories.AttributeValueRepositoryImpl
	bindingRepo    repositories.BindingRepositoryImpl
	assignmentRepo repositories.AssignmentRepositoryImpl
	attributeSvc   *AttributeService
	filterSvc      *FilterService
	organizerSvc   *OrganizerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	f := &fixture{
		t:              t,
		db:             db,
		categoryRepo:   repositories.NewCategoryRepository(db),
		productRepo:    repositories.NewProductRepository(db),
		attributeRepo:  repositories.NewAttributeRepository(db),
		valueRepo:      repositories.NewAttributeValueRepository(db),
		bindingRepo:    repositories.NewBindingRepository(db),
		assignmentRepo: repositories.NewAssignmentRepository(db),
	}
	f.attributeSvc = NewAttributeService(f.attributeRepo, f.assignmentRepo, f.bindingRepo, f.productRepo)
	f.filterSvc = NewFilterService(f.categoryRepo, f.productRepo, f.bindingRepo, f.assignmentRepo)
	f.organizerSvc = NewOrganizerService(f.categoryRepo)
	return f
}

func (f *fixture) category(name, section string, parent *models.Category) *models.Category {
	f.t.Helper()
	c := &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      uuid.NewString()[:8] + "-" + name,
		Section:   section,
		IsVisible: true,
	}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	if err := f.categoryRepo.Create(context.Background(), c); err != nil {
		f.t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func (f *fixture) attribute(name, key string) *models.Attribute {
	f.t.Helper()
	a := &models.Attribute{
		ID:           uuid.New().String(),
		Name:         name,
		Key:          key,
		Type:         models.AttributeTypeSelect,
		IsFilterable: true,
	}
	if err := f.attributeRepo.Create(context.Background(), a); err != nil {
		f.t.Fatalf("create attribute %s: %v", key, err)
	}
	return a
}

func (f *fixture) value(attribute *models.Attribute, text string, order int) *models.AttributeValue {
	f.t.Helper()
	v := &models.AttributeValue{
		ID:           uuid.New().String(),
		AttributeID:  attribute.ID,
		Value:        text,
		DisplayOrder: order,
	}
	if err := f.valueRepo.Create(context.Background(), v); err != nil {
		f.t.Fatalf("create value %s: %v", text, err)
	}
	return v
}

func (f *fixture) bind(category *models.Category, attribute *models.Attribute, required bool, order int) {
	f.t.Helper()
	if _, err := f.bindingRepo.Bind(context.Background(), category.ID, attribute.ID, required, order); err != nil {
		f.t.Fatalf("bind %s to %s: %v", attribute.Key, category.Name, err)
	}
}

func (f *fixture) product(name string, category *models.Category) *models.Product {
	f.t.Helper()
	p := &models.Product{
		ID:         uuid.New().String(),
		Name:       name,
		Slug:       uuid.NewString()[:8] + "-" + name,
		Price:      decimal.NewFromInt(1000000),
		Stock:      3,
		CategoryID: category.ID,
		IsActive:   true,
	}
	if err := f.productRepo.Create(context.Background(), p); err != nil {
		f.t.Fatalf("create product %s: %v", name, err)
	}
	return p
}

func (f *fixture) set(product *models.Product, key, value string) {
	f.t.Helper()
	if _, err := f.attributeSvc.SetAttributeValue(context.Background(), product.ID, key, value); err != nil {
		f.t.Fatalf("set %s=%s on %s: %v", key, value, product.Name, err)
	}
}

func productIDs(products []models.Product) map[string]bool {
	ids := make(map[string]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}
	return ids
}
