package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.Product, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error)
	GetNewArrivals(ctx context.Context, limit int) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	err := p.db.WithContext(ctx).Create(product).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("product with slug %q already exists", product.Slug)
	}
	return err
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product %s not found", id)
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product %q not found", slug)
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]models.Product, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category_id IN ? AND is_active = ?", categoryIDs, true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	base := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetNewArrivals(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	q := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_new_arrival = ? AND is_active = ?", true, true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&products).Error
	return products, err
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

// Delete soft-deletes the product and removes its attribute assignments, the
// assignments being owned by the product.
func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductAttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}
