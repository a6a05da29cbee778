package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetVisible(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	DescendantIDs(ctx context.Context, id string) ([]string, error)
	HasChildren(ctx context.Context, id string) (bool, error)
	CountProducts(ctx context.Context, categoryIDs []string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("category %q already exists", category.Name)
	}
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category %s not found", id)
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category %q not found", slug)
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Preload("Parent").Order("name").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetVisible(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Where("is_visible = ?", true).
		Order("name").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

// DescendantIDs walks the category tree breadth-first and returns the ids of
// every category below the given one. The tree is small reference data, so
// the walk runs level by level in Go rather than with recursive SQL.
func (r *categoryRepository) DescendantIDs(ctx context.Context, id string) ([]string, error) {
	var descendants []string
	frontier := []string{id}
	for len(frontier) > 0 {
		var children []string
		err := r.db.WithContext(ctx).
			Model(&models.Category{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error
		if err != nil {
			return nil, fmt.Errorf("failed to walk subcategories of %s: %w", id, err)
		}
		descendants = append(descendants, children...)
		frontier = children
	}
	return descendants, nil
}

func (r *categoryRepository) HasChildren(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountProducts counts the active products across the given categories.
func (r *categoryRepository) CountProducts(ctx context.Context, categoryIDs []string) (int64, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id IN ? AND is_active = ?", categoryIDs, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
