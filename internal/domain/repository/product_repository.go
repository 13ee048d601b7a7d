package repository

import (
	"context"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y Update devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, id int64, apply func(p *entity.Product) error) (*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SeedIfEmpty(ctx context.Context, products []entity.Product) (int, error)
}
