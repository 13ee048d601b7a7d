package docstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo guarda la sesión activa en el slot currentUser del documento.
type SessionRepo struct {
	store repository.DocumentStore
}

// NewSessionRepository construye el repositorio de sesión.
func NewSessionRepository(store repository.DocumentStore) *SessionRepo {
	return &SessionRepo{store: store}
}

// Current devuelve el usuario en sesión o nil.
func (r *SessionRepo) Current(ctx context.Context) (*entity.User, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.CurrentUser, nil
}

// Set reemplaza la sesión actual.
func (r *SessionRepo) Set(ctx context.Context, user *entity.User) error {
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		doc.CurrentUser = user
		return nil
	})
	if err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	return nil
}

// Clear cierra la sesión actual.
func (r *SessionRepo) Clear(ctx context.Context) error {
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		doc.CurrentUser = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	return nil
}
