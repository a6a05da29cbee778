package services

import (
	"context"
	"fmt"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
)

// FilterService resolves attribute filter queries against a category's
// product set.
type FilterService struct {
	categoryRepo   repositories.CategoryRepositoryImpl
	productRepo    repositories.ProductRepositoryImpl
	bindingRepo    repositories.BindingRepositoryImpl
	assignmentRepo repositories.AssignmentRepositoryImpl
}

func NewFilterService(
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	bindingRepo repositories.BindingRepositoryImpl,
	assignmentRepo repositories.AssignmentRepositoryImpl,
) *FilterService {
	return &FilterService{
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		bindingRepo:    bindingRepo,
		assignmentRepo: assignmentRepo,
	}
}

// FilterProducts returns the active products of the category and all of its
// descendants whose resolved attribute values match the filters. A key with
// several values matches a product holding any one of them; across keys the
// filters are conjunctive. Filter keys not bound to the category are
// rejected with a BadRequest error. Matching is case-sensitive on the
// resolved display text, whether it comes from a catalog reference or a
// custom value.
func (s *FilterService) FilterProducts(ctx context.Context, categoryID string, filters map[string][]string) ([]models.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	for key := range filters {
		bound, err := s.bindingRepo.IsBound(ctx, categoryID, key)
		if err != nil {
			return nil, fmt.Errorf("failed to check filter key %q: %w", key, err)
		}
		if !bound {
			return nil, apperrors.BadRequest("attribute %q is not available for category %s", key, category.Name)
		}
	}

	descendants, err := s.categoryRepo.DescendantIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	scope := append([]string{categoryID}, descendants...)

	products, err := s.productRepo.GetByCategoryIDs(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return products, nil
	}

	matched := make([]models.Product, 0, len(products))
	for _, product := range products {
		ok, err := s.productMatches(ctx, product.ID, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

// productMatches requires an assignment resolving to one of the wanted
// texts for every filter key. A product missing an assignment for a
// filtered key does not match.
func (s *FilterService) productMatches(ctx context.Context, productID string, filters map[string][]string) (bool, error) {
	assignments, err := s.assignmentRepo.ListByProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	resolved := make(map[string]string, len(assignments))
	for _, a := range assignments {
		resolved[a.Attribute.Key] = a.DisplayValue()
	}
	for key, wanted := range filters {
		got, ok := resolved[key]
		if !ok {
			return false, nil
		}
		matched := false
		for _, want := range wanted {
			if got == want {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}
