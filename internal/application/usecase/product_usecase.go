package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

const imageCleanupTimeout = 10 * time.Second

// Mensajes de validación de productos.
const (
	msgProductFieldsRequired = "Name, description, and price are required"
	msgNegativePrice         = "Price must not be negative"
	msgNegativeStock         = "Stock must not be negative"
)

// ProductUseCase casos de uso CRUD para productos y la lista de precios en PDF.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ports.ImageHost
	pdf    ports.CatalogPDFGenerator
	title  string
	log    *logger.Logger
	now    func() time.Time
}

// NewProductUseCase construye el caso de uso. images y pdf pueden ser nil.
func NewProductUseCase(repo repository.ProductRepository, images ports.ImageHost, pdf ports.CatalogPDFGenerator, title string, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, images: images, pdf: pdf, title: title, log: log, now: time.Now}
}

// List devuelve todo el catálogo.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida la entrada y crea el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.Price == nil {
		return nil, domain.NewValidationError(msgProductFieldsRequired)
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError(msgNegativePrice)
	}
	if in.Stock < 0 {
		return nil, domain.NewValidationError(msgNegativeStock)
	}

	product := &entity.Product{
		Name:          name,
		Description:   description,
		Price:         *in.Price,
		Stock:         in.Stock,
		Image:         in.Image,
		Alt:           in.Alt,
		ImagePublicID: in.ImagePublicID,
		Rating:        in.Rating,
		Reviews:       in.Reviews,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update aplica solo los campos presentes; (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.NewValidationError(msgNegativePrice)
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.NewValidationError(msgNegativeStock)
	}
	return uc.repo.Update(ctx, id, func(p *entity.Product) error {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.Image != nil {
			p.Image = *in.Image
		}
		if in.Alt != nil {
			p.Alt = *in.Alt
		}
		if in.ImagePublicID != nil {
			p.ImagePublicID = *in.ImagePublicID
		}
		if in.Rating != nil {
			p.Rating = *in.Rating
		}
		if in.Reviews != nil {
			p.Reviews = *in.Reviews
		}
		return nil
	})
}

// Delete borra el producto. Si tiene imagePublicId intenta borrar la imagen del host;
// un fallo ahí solo se registra y no impide borrar el producto.
// Devuelve false si el producto no existía.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	if product.ImagePublicID != "" && uc.images != nil {
		uc.cleanupImage(ctx, product.ImagePublicID)
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, fmt.Errorf("delete product %d: el registro desapareció durante el borrado", id)
	}
	return true, nil
}

func (uc *ProductUseCase) cleanupImage(ctx context.Context, publicID string) {
	ctx, cancel := context.WithTimeout(ctx, imageCleanupTimeout)
	defer cancel()
	if err := uc.images.Delete(ctx, publicID); err != nil {
		uc.log.Warn().Err(err).Str("image_public_id", publicID).Msg("no se pudo borrar la imagen del producto; se continúa con el borrado")
	}
}

// CatalogPDF genera la lista de precios con el catálogo actual.
func (uc *ProductUseCase) CatalogPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("catalog pdf: generador no configurado")
	}
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, uc.title, uc.now(), products)
}

// SeedDemo carga los productos demo si el catálogo está vacío.
func (uc *ProductUseCase) SeedDemo(ctx context.Context) (int, error) {
	n, err := uc.repo.SeedIfEmpty(ctx, DemoProducts())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.log.Info().Int("products", n).Msg("catálogo demo cargado")
	}
	return n, nil
}
