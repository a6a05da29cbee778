package services

import (
	"context"
	"fmt"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
)

// AttributeService implements the product attribute assignment contracts on
// top of the attribute, assignment and binding repositories.
type AttributeService struct {
	attributeRepo  repositories.AttributeRepositoryImpl
	assignmentRepo repositories.AssignmentRepositoryImpl
	bindingRepo    repositories.BindingRepositoryImpl
	productRepo    repositories.ProductRepositoryImpl
}

func NewAttributeService(
	attributeRepo repositories.AttributeRepositoryImpl,
	assignmentRepo repositories.AssignmentRepositoryImpl,
	bindingRepo repositories.BindingRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *AttributeService {
	return &AttributeService{
		attributeRepo:  attributeRepo,
		assignmentRepo: assignmentRepo,
		bindingRepo:    bindingRepo,
		productRepo:    productRepo,
	}
}

// AvailableAttribute is a category-bound attribute annotated with whether
// the product already holds a value for it.
type AvailableAttribute struct {
	Attribute models.Attribute
	Required  bool
	HasValue  bool
}

// SetAttributeValue assigns a value to the product for the attribute named
// by key. When the text matches a catalog value the assignment references
// it; otherwise the text is stored verbatim as a custom value.
func (s *AttributeService) SetAttributeValue(ctx context.Context, productID, attributeKey, value string) (*models.ProductAttributeValue, error) {
	attribute, err := s.attributeRepo.GetByKey(ctx, attributeKey)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.SetValue(ctx, productID, attribute, value)
}

// GetAttributeValue returns the resolved display text for the product's
// assignment, or ok=false when the product has no value for the key.
func (s *AttributeService) GetAttributeValue(ctx context.Context, productID, attributeKey string) (string, bool, error) {
	attribute, err := s.attributeRepo.GetByKey(ctx, attributeKey)
	if err != nil {
		return "", false, err
	}
	assignment, err := s.assignmentRepo.GetByProductAndAttribute(ctx, productID, attribute.ID)
	if err != nil {
		return "", false, err
	}
	if assignment == nil {
		return "", false, nil
	}
	return assignment.DisplayValue(), true, nil
}

// GetAttributesDict maps attribute key to resolved display text for every
// assignment the product has. Unset keys are omitted.
func (s *AttributeService) GetAttributesDict(ctx context.Context, productID string) (map[string]string, error) {
	assignments, err := s.assignmentRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("failed to list assignments for product %s", productID), err)
	}
	dict := make(map[string]string, len(assignments))
	for _, a := range assignments {
		dict[a.Attribute.Key] = a.DisplayValue()
	}
	return dict, nil
}

// GetAvailableAttributes returns the attributes bound to the product's
// category, each annotated with whether the product already has a value.
func (s *AttributeService) GetAvailableAttributes(ctx context.Context, productID string) ([]AvailableAttribute, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	bound, err := s.bindingRepo.ListByCategory(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	assigned, err := s.GetAttributesDict(ctx, productID)
	if err != nil {
		return nil, err
	}

	available := make([]AvailableAttribute, 0, len(bound))
	for _, b := range bound {
		_, hasValue := assigned[b.Attribute.Key]
		available = append(available, AvailableAttribute{
			Attribute: b.Attribute,
			Required:  b.Required,
			HasValue:  hasValue,
		})
	}
	return available, nil
}

// ClearAttributeValue removes the product's assignment for the key, if any.
func (s *AttributeService) ClearAttributeValue(ctx context.Context, productID, attributeKey string) error {
	attribute, err := s.attributeRepo.GetByKey(ctx, attributeKey)
	if err != nil {
		return err
	}
	return s.assignmentRepo.Clear(ctx, productID, attribute.ID)
}
