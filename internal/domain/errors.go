package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidPassword    = errors.New("contraseña incorrecta")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrImageHostDisabled  = errors.New("host de imágenes no configurado")
)

// ValidationError error de entrada con un mensaje apto para el cliente.
// errors.Is(err, ErrInvalidInput) es true para cualquier ValidationError.
type ValidationError struct {
	Message string
}

// NewValidationError crea un ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
