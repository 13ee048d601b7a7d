package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/auraskin-api/pkg/currency"
)

// Product representa un producto del catálogo.
// PriceDisplay es una proyección de Price; se recalcula con Normalize, nunca se edita a mano.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	PriceDisplay  string          `json:"priceDisplay"`
	Stock         int             `json:"stock"`
	Image         string          `json:"image"`
	Alt           string          `json:"alt"`
	ImagePublicID string          `json:"imagePublicId,omitempty"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
}

// MarshalJSON serializa price como número JSON; decimal.Decimal por sí solo lo entrega como string.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price json.RawMessage `json:"price"`
	}{
		alias: alias(p),
		Price: json.RawMessage(p.Price.String()),
	})
}

// Normalize aplica los valores por defecto y recalcula los campos derivados.
// Stock se conserva tal cual; la validación de entrada rechaza negativos antes de guardar.
func (p *Product) Normalize() {
	if p.Alt == "" {
		p.Alt = p.Name
	}
	p.PriceDisplay = currency.FormatRupiah(p.Price)
}
