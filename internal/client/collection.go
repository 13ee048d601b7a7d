package client

import (
	"context"
	"sync"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// Backend operaciones remotas de una colección.
type Backend[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in C) (*T, error)
	Update(ctx context.Context, id int64, in U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Collection copia en memoria de una colección del servidor.
// Cada mutación llama primero a la API y luego ajusta la memoria con la respuesta del servidor.
// No hay re-sincronización periódica: Load vuelve a traer la lista completa.
type Collection[T, C, U any] struct {
	backend Backend[T, C, U]
	idOf    func(T) int64

	mu     sync.RWMutex
	items  []T
	loaded bool
}

// NewCollection construye una colección vacía sobre backend.
func NewCollection[T, C, U any](backend Backend[T, C, U], idOf func(T) int64) *Collection[T, C, U] {
	return &Collection[T, C, U]{backend: backend, idOf: idOf}
}

// Load reemplaza la memoria con la lista completa del servidor.
func (c *Collection[T, C, U]) Load(ctx context.Context) ([]T, error) {
	items, err := c.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items = append([]T(nil), items...)
	c.loaded = true
	out := append([]T(nil), c.items...)
	c.mu.Unlock()
	return out, nil
}

// Loaded indica si ya se hizo un Load.
func (c *Collection[T, C, U]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Items copia de los elementos en memoria.
func (c *Collection[T, C, U]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Get busca en memoria por id.
func (c *Collection[T, C, U]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add crea en el servidor y agrega el registro devuelto.
func (c *Collection[T, C, U]) Add(ctx context.Context, in C) (T, error) {
	created, err := c.backend.Create(ctx, in)
	if err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	c.items = append(c.items, *created)
	c.mu.Unlock()
	return *created, nil
}

// Update actualiza en el servidor y reemplaza el registro en memoria.
// Un 404 del servidor elimina el registro local.
func (c *Collection[T, C, U]) Update(ctx context.Context, id int64, in U) (T, error) {
	updated, err := c.backend.Update(ctx, id, in)
	if err != nil {
		if IsNotFound(err) {
			c.remove(id)
		}
		var zero T
		return zero, err
	}
	c.mu.Lock()
	replaced := false
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = *updated
			replaced = true
		}
	}
	if !replaced {
		c.items = append(c.items, *updated)
	}
	c.mu.Unlock()
	return *updated, nil
}

// Delete borra en el servidor y filtra el registro en memoria.
// Un 404 también filtra el registro local y se devuelve el error.
func (c *Collection[T, C, U]) Delete(ctx context.Context, id int64) error {
	if err := c.backend.Delete(ctx, id); err != nil {
		if IsNotFound(err) {
			c.remove(id)
		}
		return err
	}
	c.remove(id)
	return nil
}

func (c *Collection[T, C, U]) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// ProductCollection colección de productos.
type ProductCollection = Collection[entity.Product, dto.CreateProductRequest, dto.UpdateProductRequest]

// UserCollection colección de usuarios.
type UserCollection = Collection[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest]

type productBackend struct{ api *APIClient }

func (b productBackend) List(ctx context.Context) ([]entity.Product, error) {
	return b.api.ListProducts(ctx)
}

func (b productBackend) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	return b.api.CreateProduct(ctx, in)
}

func (b productBackend) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	return b.api.UpdateProduct(ctx, id, in)
}

func (b productBackend) Delete(ctx context.Context, id int64) error {
	return b.api.DeleteProduct(ctx, id)
}

type userBackend struct{ api *APIClient }

func (b userBackend) List(ctx context.Context) ([]entity.User, error) {
	return b.api.ListUsers(ctx)
}

func (b userBackend) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	return b.api.CreateUser(ctx, in)
}

func (b userBackend) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*entity.User, error) {
	return b.api.UpdateUser(ctx, id, in)
}

func (b userBackend) Delete(ctx context.Context, id int64) error {
	return b.api.DeleteUser(ctx, id)
}

// NewProductCollection colección de productos sobre api.
func NewProductCollection(api *APIClient) *ProductCollection {
	return NewCollection[entity.Product, dto.CreateProductRequest, dto.UpdateProductRequest](
		productBackend{api: api}, func(p entity.Product) int64 { return p.ID })
}

// NewUserCollection colección de usuarios sobre api.
func NewUserCollection(api *APIClient) *UserCollection {
	return NewCollection[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest](
		userBackend{api: api}, func(u entity.User) int64 { return u.ID })
}
