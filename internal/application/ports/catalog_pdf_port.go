package ports

import (
	"context"
	"time"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// CatalogPDFGenerator genera la lista de precios imprimible del catálogo.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, title string, generatedAt time.Time, products []entity.Product) ([]byte, error)
}
