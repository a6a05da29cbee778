package migrations

import (
	"github.com/arashsoltani/zarshop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.Attribute{},
		&models.AttributeValue{},
		&models.CategoryAttribute{},
		&models.ProductAttributeValue{},
	)
}
