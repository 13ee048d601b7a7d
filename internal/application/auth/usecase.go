package auth

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
	"github.com/jhoicas/auraskin-api/pkg/jwt"
)

const minPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: registro, login, logout y sesión actual.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, jwtCfg: jwtCfg, now: time.Now}
}

// Register crea la cuenta. El primer usuario registrado queda como admin.
// Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, domain.NewValidationError("All fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewValidationError("Passwords do not match")
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.NewValidationError("Password must be at least 6 characters")
	}

	existing, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	role := entity.RoleUser
	if len(existing) == 0 {
		role = entity.RoleAdmin
	}

	user := &entity.User{Name: name, Email: email, Password: in.Password, Role: role}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login busca por email exacto y compara el password.
// Email desconocido y password incorrecto son errores distintos (ErrUserNotFound / ErrInvalidPassword).
// Con éxito guarda el snapshot en currentUser y firma un JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Email and password are required")
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Password != in.Password {
		return nil, domain.ErrInvalidPassword
	}

	snapshot := user.SessionSnapshot(uc.now())
	if err := uc.sessions.Set(ctx, snapshot); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: snapshot}, nil
}

// Logout vacía currentUser.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}

// Current devuelve el snapshot de currentUser o nil.
func (uc *AuthUseCase) Current(ctx context.Context) (*entity.User, error) {
	return uc.sessions.Current(ctx)
}

// Me devuelve la sesión del usuario del token. Si currentUser pertenece a otro usuario
// (otra sesión posterior) se devuelve el registro actual sin password ni loginTime.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*entity.User, error) {
	current, err := uc.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil && current.ID == userID {
		return current, nil
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}
