package repositories

import (
	"context"
	"errors"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"gorm.io/gorm"
)

type AttributeValueRepositoryImpl interface {
	Create(ctx context.Context, value *models.AttributeValue) error
	ListByAttribute(ctx context.Context, attributeID string) ([]models.AttributeValue, error)
	Delete(ctx context.Context, id string) error
}

type attributeValueRepository struct {
	db *gorm.DB
}

func NewAttributeValueRepository(db *gorm.DB) AttributeValueRepositoryImpl {
	return &attributeValueRepository{db: db}
}

func (r *attributeValueRepository) Create(ctx context.Context, value *models.AttributeValue) error {
	err := r.db.WithContext(ctx).Create(value).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("value %q already exists for attribute %s", value.Value, value.AttributeID)
	}
	return err
}

func (r *attributeValueRepository) ListByAttribute(ctx context.Context, attributeID string) ([]models.AttributeValue, error) {
	var values []models.AttributeValue
	err := r.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("display_order, value").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *attributeValueRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.AttributeValue{}, "id = ?", id).Error
}
