package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección users.
type UserRepo struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository(store repository.DocumentStore) *UserRepo {
	return &UserRepo{store: store, now: time.Now}
}

// WithClock reemplaza el reloj usado para IDs y createdAt.
func (r *UserRepo) WithClock(now func() time.Time) *UserRepo {
	r.now = now
	return r
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return append([]entity.User{}, doc.Users...), nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// GetByEmail busca por coincidencia exacta del email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := r.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range doc.Users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// Create inserta el usuario si ningún otro tiene el mismo email (sin distinguir mayúsculas).
// La verificación y el append ocurren en el mismo Update.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		var maxID int64
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, user.Email) {
				return domain.ErrEmailAlreadyExists
			}
			if user.ID != 0 && u.ID == user.ID {
				return domain.ErrDuplicate
			}
			maxID = max(maxID, u.ID)
		}
		now := r.now()
		if user.ID == 0 {
			user.ID = nextID(now, maxID)
		}
		user.Normalize(now)
		doc.Users = append(doc.Users, *user)
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update aplica apply sobre una copia del usuario y fija de nuevo el ID.
// Si el email cambia y ya pertenece a otro usuario devuelve ErrEmailAlreadyExists.
func (r *UserRepo) Update(ctx context.Context, id int64, apply func(u *entity.User) error) (*entity.User, error) {
	var updated *entity.User
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		idx := -1
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errSkip
		}
		u := doc.Users[idx]
		prevEmail := u.Email
		if err := apply(&u); err != nil {
			return err
		}
		u.ID = id
		if u.Email != prevEmail {
			for i, other := range doc.Users {
				if i != idx && strings.EqualFold(other.Email, u.Email) {
					return domain.ErrEmailAlreadyExists
				}
			}
		}
		doc.Users[idx] = u
		updated = &u
		return nil
	})
	if errors.Is(err, errSkip) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete elimina el usuario; devuelve false si no existía.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.store.Update(ctx, func(doc *entity.Document) error {
		kept := doc.Users[:0]
		for _, u := range doc.Users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		if len(kept) == len(doc.Users) {
			return errSkip
		}
		doc.Users = kept
		return nil
	})
	if errors.Is(err, errSkip) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return true, nil
}
