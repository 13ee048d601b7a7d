package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
)

const (
	msgUserFieldsRequired = "Name, email, and password are required"
	msgInvalidRole        = "Role must be user or admin"
)

// UserUseCase casos de uso CRUD para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida y crea el usuario. Devuelve domain.ErrEmailAlreadyExists si el email está en uso.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.NewValidationError(msgUserFieldsRequired)
	}
	if in.Role != "" && !entity.ValidRole(in.Role) {
		return nil, domain.NewValidationError(msgInvalidRole)
	}
	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: in.Password,
		Role:     in.Role,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update aplica solo los campos presentes; (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*entity.User, error) {
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		return nil, domain.NewValidationError(msgInvalidRole)
	}
	return uc.repo.Update(ctx, id, func(u *entity.User) error {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil && *in.Email != "" {
			u.Email = strings.TrimSpace(*in.Email)
		}
		if in.Password != nil && *in.Password != "" {
			u.Password = *in.Password
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		return nil
	})
}

// Delete borra el usuario; false si no existía.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}
