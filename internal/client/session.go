package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// SessionSnapshot lo que queda guardado en disco después del login.
type SessionSnapshot struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Session sesión del lado del cliente: snapshot en un archivo JSON local.
type Session struct {
	api  *APIClient
	path string
	mu   sync.Mutex
}

// NewSession construye la sesión guardada en path.
func NewSession(api *APIClient, path string) *Session {
	return &Session{api: api, path: path}
}

// DefaultSessionPath ~/.auraskin/session.json.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".auraskin", "session.json"), nil
}

// Login autentica contra la API y guarda el snapshot con loginTime y token.
// Email desconocido y password incorrecto llegan como *APIError con 404 y 401.
func (s *Session) Login(ctx context.Context, email, password string) (*SessionSnapshot, error) {
	out, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("login: respuesta sin usuario")
	}
	snap := &SessionSnapshot{Token: out.Token, User: *out.User}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(snap); err != nil {
		return nil, err
	}
	s.api.SetToken(out.Token)
	return snap, nil
}

// Logout vacía la sesión del servidor y borra el snapshot local.
// El archivo local se borra aunque falle la llamada al servidor.
func (s *Session) Logout(ctx context.Context) error {
	apiErr := s.api.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.api.SetToken("")
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión %s: %w", s.path, err)
	}
	return apiErr
}

// Current lee el snapshot guardado; (nil, nil) si no hay sesión.
// Si hay sesión deja su token en el APIClient.
func (s *Session) Current() (*SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión %s: %w", s.path, err)
	}
	var snap SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("sesión %s corrupta: %w", s.path, err)
	}
	s.api.SetToken(snap.Token)
	return &snap, nil
}

func (s *Session) save(snap *SessionSnapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("guardar sesión %s: %w", s.path, err)
	}
	return nil
}
