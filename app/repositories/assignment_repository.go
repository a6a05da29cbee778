package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arashsoltani/zarshop/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepositoryImpl interface {
	SetValue(ctx context.Context, productID string, attribute *models.Attribute, text string) (*models.ProductAttributeValue, error)
	GetByProductAndAttribute(ctx context.Context, productID, attributeID string) (*models.ProductAttributeValue, error)
	ListByProduct(ctx context.Context, productID string) ([]models.ProductAttributeValue, error)
	Clear(ctx context.Context, productID, attributeID string) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepositoryImpl {
	return &assignmentRepository{db: db}
}

// SetValue upserts the (product, attribute) assignment inside one
// transaction. Lookup-or-literal: when the text matches a catalog value for
// the attribute the assignment stores a reference to it, otherwise the text
// is kept verbatim as a custom value. A concurrent reader never observes a
// row with both arms set.
func (r *assignmentRepository) SetValue(ctx context.Context, productID string, attribute *models.Attribute, text string) (*models.ProductAttributeValue, error) {
	var assignment *models.ProductAttributeValue

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ProductAttributeValue
		err := tx.First(&existing, "product_id = ? AND attribute_id = ?", productID, attribute.ID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			existing = models.ProductAttributeValue{
				ID:          uuid.New().String(),
				ProductID:   productID,
				AttributeID: attribute.ID,
				CreatedAt:   time.Now(),
			}
		}

		var catalogValues []models.AttributeValue
		if err := tx.Where("attribute_id = ?", attribute.ID).Find(&catalogValues).Error; err != nil {
			return fmt.Errorf("failed to load value catalog for attribute %s: %w", attribute.Key, err)
		}

		value := models.CustomText(text)
		for i := range catalogValues {
			if catalogValues[i].Value == text {
				value = models.ValueRef(&catalogValues[i])
				break
			}
		}
		if err := value.Apply(&existing); err != nil {
			return err
		}

		existing.UpdatedAt = time.Now()
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		assignment = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *assignmentRepository) GetByProductAndAttribute(ctx context.Context, productID, attributeID string) (*models.ProductAttributeValue, error) {
	var assignment models.ProductAttributeValue
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Preload("AttributeValue").
		First(&assignment, "product_id = ? AND attribute_id = ?", productID, attributeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) ListByProduct(ctx context.Context, productID string) ([]models.ProductAttributeValue, error) {
	var assignments []models.ProductAttributeValue
	err := r.db.WithContext(ctx).
		Preload("Attribute").
		Preload("AttributeValue").
		Where("product_id = ?", productID).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) Clear(ctx context.Context, productID, attributeID string) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND attribute_id = ?", productID, attributeID).
		Delete(&models.ProductAttributeValue{}).Error
}
