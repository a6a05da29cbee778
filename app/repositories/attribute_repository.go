package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	Create(ctx context.Context, attribute *models.Attribute) error
	GetByID(ctx context.Context, id string) (*models.Attribute, error)
	GetByKey(ctx context.Context, key string) (*models.Attribute, error)
	GetAll(ctx context.Context) ([]models.Attribute, error)
	Update(ctx context.Context, attribute *models.Attribute) error
	Delete(ctx context.Context, id string) error
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	err := r.db.WithContext(ctx).Create(attribute).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("attribute with key %q already exists", attribute.Key)
	}
	return err
}

func (r *attributeRepository) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attribute %s not found", id)
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetByKey(ctx context.Context, key string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).First(&attribute, "`key` = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attribute with key %q not found", key)
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetAll(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).Order("display_order, name").Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

// Update saves the attribute. The key is immutable once any product
// assignment references the attribute.
func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	var current models.Attribute
	err := r.db.WithContext(ctx).First(&current, "id = ?", attribute.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("attribute %s not found", attribute.ID)
		}
		return err
	}
	if current.Key != attribute.Key {
		var refs int64
		err := r.db.WithContext(ctx).
			Model(&models.ProductAttributeValue{}).
			Where("attribute_id = ?", attribute.ID).
			Count(&refs).Error
		if err != nil {
			return err
		}
		if refs > 0 {
			return apperrors.Conflict("attribute key %q cannot change while product assignments reference it", current.Key)
		}
	}

	err = r.db.WithContext(ctx).Save(attribute).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("attribute with key %q already exists", attribute.Key)
	}
	return err
}

// Delete removes the attribute together with its value catalog, category
// bindings and product assignments in one transaction.
func (r *attributeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", id).Delete(&models.ProductAttributeValue{}).Error; err != nil {
			return fmt.Errorf("failed to delete product assignments for attribute %s: %w", id, err)
		}
		if err := tx.Where("attribute_id = ?", id).Delete(&models.CategoryAttribute{}).Error; err != nil {
			return fmt.Errorf("failed to delete category bindings for attribute %s: %w", id, err)
		}
		if err := tx.Where("attribute_id = ?", id).Delete(&models.AttributeValue{}).Error; err != nil {
			return fmt.Errorf("failed to delete values for attribute %s: %w", id, err)
		}
		return tx.Delete(&models.Attribute{}, "id = ?", id).Error
	})
}
