package repository

import (
	"context"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Create y Update devuelven domain.ErrEmailAlreadyExists si el email choca con otro usuario.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, id int64, apply func(u *entity.User) error) (*entity.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
