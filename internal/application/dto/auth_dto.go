package dto

import "github.com/jhoicas/auraskin-api/internal/domain/entity"

// RegisterRequest entrada del registro público.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse snapshot de la sesión y token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
