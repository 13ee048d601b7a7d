package repository

import (
	"context"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// DocumentStore define el puerto de persistencia del documento completo (products, users, currentUser).
// Update es un read-modify-write atómico: si fn devuelve error no se escribe nada.
type DocumentStore interface {
	Read(ctx context.Context) (*entity.Document, error)
	Write(ctx context.Context, doc *entity.Document) error
	Update(ctx context.Context, fn func(doc *entity.Document) error) error
}
