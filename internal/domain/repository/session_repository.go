package repository

import (
	"context"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// SessionRepository maneja el slot currentUser del documento.
type SessionRepository interface {
	Current(ctx context.Context) (*entity.User, error)
	Set(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error
}
