package fakers

import (
	"math/rand"

	"github.com/arashsoltani/zarshop/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func ProductFaker(category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()

	productID := uuid.New().String()
	slugText := slug.Make(name + "-" + uuid.NewString()[:6])

	product := &models.Product{
		ID:           productID,
		Name:         name,
		Slug:         slugText,
		Sku:          slug.Make(name),
		Description:  faker.Sentence(),
		Price:        decimal.NewFromInt(int64(rand.Intn(5000)+100) * 1000),
		Stock:        rand.Intn(50),
		Weight:       decimal.NewFromFloat(rand.Float64() * 2),
		CategoryID:   category.ID,
		IsActive:     true,
		IsNewArrival: rand.Intn(5) == 0,
	}

	return product
}
