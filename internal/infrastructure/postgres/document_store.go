package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS store_documents (
			name       TEXT PRIMARY KEY,
			body       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	selectQuery     = `SELECT body FROM store_documents WHERE name = $1`
	selectLockQuery = `SELECT body FROM store_documents WHERE name = $1 FOR UPDATE`
	upsertQuery     = `
		INSERT INTO store_documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`
	insertDefaultQuery = `
		INSERT INTO store_documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO NOTHING`
)

// DB lo que el store necesita de la conexión; lo cumplen *pgxpool.Pool y los mocks de pgxmock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DocumentStore guarda el documento completo como una fila JSONB de store_documents.
// Update bloquea la fila (SELECT ... FOR UPDATE) para que read-modify-write sea atómico entre procesos.
type DocumentStore struct {
	db   DB
	name string
	log  *logger.Logger
}

// NewDocumentStore construye el store para la fila name.
func NewDocumentStore(db DB, name string, log *logger.Logger) *DocumentStore {
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentStore{db: db, name: name, log: log}
}

// EnsureSchema crea la tabla si no existe.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("create store_documents: %w", err)
	}
	return nil
}

// Read devuelve el documento; si la fila no existe la crea con el documento por defecto.
func (s *DocumentStore) Read(ctx context.Context) (*entity.Document, error) {
	var body []byte
	err := s.db.QueryRow(ctx, selectQuery, s.name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		doc := entity.NewDocument()
		if err := s.insertDefault(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select document: %w", domain.ErrStorageUnavailable, err)
	}
	return decode(body)
}

// Write reemplaza el documento completo.
func (s *DocumentStore) Write(ctx context.Context, doc *entity.Document) error {
	body, err := encode(doc)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, upsertQuery, s.name, body); err != nil {
		return fmt.Errorf("%w: upsert document: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Update ejecuta fn dentro de una transacción con la fila bloqueada.
// Si fn devuelve error se hace rollback y no se escribe nada.
func (s *DocumentStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		doc  *entity.Document
		body []byte
	)
	err = tx.QueryRow(ctx, selectLockQuery, s.name).Scan(&body)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		doc = entity.NewDocument()
	case err != nil:
		return fmt.Errorf("%w: lock document: %w", domain.ErrStorageUnavailable, err)
	default:
		if doc, err = decode(body); err != nil {
			return err
		}
	}

	if err := fn(doc); err != nil {
		return err
	}

	out, err := encode(doc)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, upsertQuery, s.name, out); err != nil {
		return fmt.Errorf("%w: upsert document: %w", domain.ErrStorageUnavailable, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *DocumentStore) insertDefault(ctx context.Context, doc *entity.Document) error {
	body, err := encode(doc)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, insertDefaultQuery, s.name, body); err != nil {
		return fmt.Errorf("%w: insert default document: %w", domain.ErrStorageUnavailable, err)
	}
	s.log.Info().Str("document", s.name).Msg("documento inicial creado en store_documents")
	return nil
}

func decode(body []byte) (*entity.Document, error) {
	var doc entity.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse document: %w", domain.ErrStorageUnavailable, err)
	}
	doc.Heal()
	return &doc, nil
}

func encode(doc *entity.Document) ([]byte, error) {
	doc.Heal()
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return body, nil
}
