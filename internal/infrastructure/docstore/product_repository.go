package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección products.
type ProductRepo struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewProductRepository construye el repositorio de productos.
func NewProductRepository(store repository.DocumentStore) *ProductRepo {
	return &ProductRepo{store: store, now: time.Now}
}

// WithClock reemplaza el reloj usado para generar IDs.
func (r *ProductRepo) WithClock(now func() time.Time) *ProductRepo {
	r.now = now
	return r
}

// List devuelve todos los productos con PriceDisplay recalculado.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, len(doc.Products))
	for i, p := range doc.Products {
		p.Normalize()
		out[i] = p
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range doc.Products {
		if p.ID == id {
			p.Normalize()
			return &p, nil
		}
	}
	return nil, nil
}

// Create asigna ID (si viene en cero), aplica defaults y agrega el producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		var maxID int64
		for _, p := range doc.Products {
			if product.ID != 0 && p.ID == product.ID {
				return domain.ErrDuplicate
			}
			maxID = max(maxID, p.ID)
		}
		if product.ID == 0 {
			product.ID = nextID(r.now(), maxID)
		}
		product.Normalize()
		doc.Products = append(doc.Products, *product)
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update aplica apply sobre una copia del producto, fija de nuevo el ID y recalcula PriceDisplay.
// Si el producto no existe devuelve (nil, nil) sin escribir.
func (r *ProductRepo) Update(ctx context.Context, id int64, apply func(p *entity.Product) error) (*entity.Product, error) {
	var updated *entity.Product
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != id {
				continue
			}
			p := doc.Products[i]
			if err := apply(&p); err != nil {
				return err
			}
			p.ID = id
			p.Normalize()
			doc.Products[i] = p
			updated = &p
			return nil
		}
		return errSkip
	})
	if errors.Is(err, errSkip) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete elimina el producto; devuelve false si no existía.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(doc.Products) {
			return errSkip
		}
		doc.Products = kept
		return nil
	})
	if errors.Is(err, errSkip) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return true, nil
}

// SeedIfEmpty carga products solo si el catálogo está vacío. Devuelve cuántos insertó.
func (r *ProductRepo) SeedIfEmpty(ctx context.Context, products []entity.Product) (int, error) {
	inserted := 0
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		if len(doc.Products) > 0 || len(products) == 0 {
			return errSkip
		}
		var maxID int64
		for _, p := range products {
			maxID = max(maxID, p.ID)
		}
		for _, p := range products {
			if p.ID == 0 {
				maxID = nextID(r.now(), maxID)
				p.ID = maxID
			}
			p.Normalize()
			doc.Products = append(doc.Products, p)
		}
		inserted = len(products)
		return nil
	})
	if errors.Is(err, errSkip) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("seed products: %w", err)
	}
	return inserted, nil
}
