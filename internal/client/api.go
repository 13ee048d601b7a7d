// Package client es el cliente Go de la API de AuraSkin: llamadas tipadas,
// colecciones en memoria reconciliadas con el servidor y la sesión persistida en disco.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

const defaultTimeout = 30 * time.Second

// APIError respuesta no 2xx del servidor.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auraskin api: http %d", e.Status)
	}
	return fmt.Sprintf("auraskin api: http %d: %s", e.Status, e.Message)
}

// IsNotFound indica si err es un 404 del servidor.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// APIClient llamadas tipadas a cada endpoint.
type APIClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// Option configura el APIClient.
type Option func(*APIClient)

// WithHTTPClient reemplaza el http.Client (timeouts, transport de tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) { c.http = hc }
}

// WithToken fija el Bearer token inicial.
func WithToken(token string) Option {
	return func(c *APIClient) { c.token = token }
}

// New construye el cliente para baseURL (ej. http://localhost:3001).
func New(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken cambia el Bearer token usado en las siguientes peticiones.
func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token devuelve el Bearer token actual.
func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// doJSON envía in como JSON (si no es nil) y decodifica data del envelope en out (si no es nil).
func (c *APIClient) doJSON(ctx context.Context, method, path string, in, out interface{}) (*envelope, error) {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("codificar petición: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	return c.send(req, out)
}

func (c *APIClient) send(req *http.Request, out interface{}) (*envelope, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if res.StatusCode >= 300 {
				return nil, &APIError{Status: res.StatusCode, Message: strings.TrimSpace(string(raw))}
			}
			return nil, fmt.Errorf("decodificar respuesta %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &APIError{Status: res.StatusCode, Code: env.Code, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decodificar data %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return &env, nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

// Health consulta /api/health. La respuesta no usa el envelope.
func (c *APIClient) Health(ctx context.Context) (*dto.HealthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/health", nil, "")
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, &APIError{Status: res.StatusCode}
	}
	var out dto.HealthResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProducts GET /api/products.
func (c *APIClient) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct GET /api/products/:id. (nil, nil) si no existe.
func (c *APIClient) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out entity.Product
	if _, err := c.doJSON(ctx, http.MethodGet, idPath("/api/products", id), nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// CreateProduct POST /api/products.
func (c *APIClient) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct PUT /api/products/:id.
func (c *APIClient) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	var out entity.Product
	if _, err := c.doJSON(ctx, http.MethodPut, idPath("/api/products", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct DELETE /api/products/:id.
func (c *APIClient) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, idPath("/api/products", id), nil, nil)
	return err
}

// CatalogPDF descarga la lista de precios.
func (c *APIClient) CatalogPDF(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/products/catalog.pdf", nil, "")
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		var env envelope
		_ = json.NewDecoder(res.Body).Decode(&env)
		return nil, &APIError{Status: res.StatusCode, Code: env.Code, Message: env.Message}
	}
	return io.ReadAll(res.Body)
}

// ListUsers GET /api/users.
func (c *APIClient) ListUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser GET /api/users/:id. (nil, nil) si no existe.
func (c *APIClient) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	var out entity.User
	if _, err := c.doJSON(ctx, http.MethodGet, idPath("/api/users", id), nil, &out); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// CreateUser POST /api/users.
func (c *APIClient) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	var out entity.User
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser PUT /api/users/:id.
func (c *APIClient) UpdateUser(ctx context.Context, id int64, in dto.UpdateUserRequest) (*entity.User, error) {
	var out entity.User
	if _, err := c.doJSON(ctx, http.MethodPut, idPath("/api/users", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser DELETE /api/users/:id.
func (c *APIClient) DeleteUser(ctx context.Context, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, idPath("/api/users", id), nil, nil)
	return err
}

// Register POST /api/auth/register.
func (c *APIClient) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	var out entity.User
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login POST /api/auth/login. No cambia el token del cliente; eso lo hace Session.
func (c *APIClient) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout POST /api/auth/logout.
func (c *APIClient) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}

// Me GET /api/auth/me con el token actual.
func (c *APIClient) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImage POST /api/upload (multipart, campo "image").
func (c *APIClient) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload", &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var out dto.UploadResponse
	if _, err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteImage DELETE /api/upload/<publicID>. Cada segmento se escapa por separado.
func (c *APIClient) DeleteImage(ctx context.Context, publicID string) error {
	segments := strings.Split(publicID, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/upload/"+strings.Join(segments, "/"), nil, nil)
	return err
}
