package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price acepta número o string numérico ("100000").
type CreateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Stock         int              `json:"stock"`
	Image         string           `json:"image"`
	Alt           string           `json:"alt"`
	ImagePublicID string           `json:"imagePublicId"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
}

// UpdateProductRequest merge superficial: solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock"`
	Image         *string          `json:"image"`
	Alt           *string          `json:"alt"`
	ImagePublicID *string          `json:"imagePublicId"`
	Rating        *float64         `json:"rating"`
	Reviews       *int             `json:"reviews"`
}
