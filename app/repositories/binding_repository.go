package repositories

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/arashsoltani/zarshop/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BindingRepositoryImpl interface {
	Bind(ctx context.Context, categoryID, attributeID string, required bool, displayOrder int) (*models.CategoryAttribute, error)
	Unbind(ctx context.Context, categoryID, attributeID string) error
	ListByCategory(ctx context.Context, categoryID string) ([]models.BoundAttribute, error)
	IsBound(ctx context.Context, categoryID, attributeKey string) (bool, error)
}

type bindingRepository struct {
	db *gorm.DB
}

func NewBindingRepository(db *gorm.DB) BindingRepositoryImpl {
	return &bindingRepository{db: db}
}

// Bind is idempotent: rebinding an existing (category, attribute) pair
// updates its flags instead of inserting a second row.
func (r *bindingRepository) Bind(ctx context.Context, categoryID, attributeID string, required bool, displayOrder int) (*models.CategoryAttribute, error) {
	var binding models.CategoryAttribute
	err := r.db.WithContext(ctx).
		First(&binding, "category_id = ? AND attribute_id = ?", categoryID, attributeID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		binding = models.CategoryAttribute{
			ID:           uuid.New().String(),
			CategoryID:   categoryID,
			AttributeID:  attributeID,
			Required:     required,
			DisplayOrder: displayOrder,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := r.db.WithContext(ctx).Create(&binding).Error; err != nil {
			return nil, err
		}
		return &binding, nil
	}

	binding.Required = required
	binding.DisplayOrder = displayOrder
	binding.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(&binding).Error; err != nil {
		return nil, err
	}
	return &binding, nil
}

func (r *bindingRepository) Unbind(ctx context.Context, categoryID, attributeID string) error {
	return r.db.WithContext(ctx).
		Where("category_id = ? AND attribute_id = ?", categoryID, attributeID).
		Delete(&models.CategoryAttribute{}).Error
}

// ListByCategory returns the category's bound attributes ordered by binding
// display order, falling back to attribute name for ties.
func (r *bindingRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.BoundAttribute, error) {
	var bindings []models.CategoryAttribute
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Where("category_id = ?", categoryID).
		Find(&bindings).Error
	if err != nil {
		return nil, err
	}

	bound := make([]models.BoundAttribute, 0, len(bindings))
	for _, b := range bindings {
		bound = append(bound, models.BoundAttribute{
			Attribute:    b.Attribute,
			Required:     b.Required,
			DisplayOrder: b.DisplayOrder,
		})
	}
	sort.SliceStable(bound, func(i, j int) bool {
		if bound[i].DisplayOrder != bound[j].DisplayOrder {
			return bound[i].DisplayOrder < bound[j].DisplayOrder
		}
		return bound[i].Attribute.Name < bound[j].Attribute.Name
	})
	return bound, nil
}

func (r *bindingRepository) IsBound(ctx context.Context, categoryID, attributeKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CategoryAttribute{}).
		Joins("JOIN attributes a ON a.id = category_attributes.attribute_id").
		Where("category_attributes.category_id = ? AND a.`key` = ?", categoryID, attributeKey).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
