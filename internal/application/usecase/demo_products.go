package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// DemoProducts catálogo inicial de la tienda (IDs 1-4).
func DemoProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          1,
			Name:        "Hydrating Serum",
			Description: "Hyaluronic Acid + B5",
			Price:       decimal.NewFromInt(375000),
			Stock:       25,
			Alt:         "A bottle of hydrating serum",
			Rating:      4,
			Reviews:     124,
		},
		{
			ID:          2,
			Name:        "Nourish Cream",
			Description: "Peptides & Ceramides",
			Price:       decimal.NewFromInt(630000),
			Stock:       18,
			Alt:         "A jar of nourishing moisturizer cream",
			Rating:      4.5,
			Reviews:     98,
		},
		{
			ID:          3,
			Name:        "Gentle Cleanser",
			Description: "Green Tea Extract",
			Price:       decimal.NewFromInt(277500),
			Stock:       40,
			Alt:         "A bottle of gentle cleansing foam",
			Rating:      5,
			Reviews:     210,
		},
		{
			ID:          4,
			Name:        "Daily Sunscreen",
			Description: "SPF 50+ Broad Spectrum",
			Price:       decimal.NewFromInt(450000),
			Stock:       32,
			Alt:         "A tube of SPF 50 sunscreen",
			Rating:      4.5,
			Reviews:     155,
		},
	}
}
