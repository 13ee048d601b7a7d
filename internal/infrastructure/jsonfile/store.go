// Package jsonfile implementa el DocumentStore sobre un único archivo JSON (db.json).
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store guarda el documento completo en path. Un mutex serializa lecturas y escrituras
// del proceso; cada escritura reemplaza el archivo de forma atómica con renameio.
type Store struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// NewStore construye el store. El archivo se crea en la primera lectura si no existe.
func NewStore(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{path: path, log: log.Named("jsonfile")}
}

// Path devuelve la ruta del archivo de datos.
func (s *Store) Path() string { return s.path }

// Read devuelve el documento completo. Si el archivo no existe crea y persiste el documento por defecto.
func (s *Store) Read(ctx context.Context) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Write reemplaza el documento completo.
func (s *Store) Write(ctx context.Context, doc *entity.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update lee, aplica fn y escribe bajo el mismo lock.
func (s *Store) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (*entity.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := entity.NewDocument()
		if err := s.write(doc); err != nil {
			return nil, err
		}
		s.log.Info().Str("path", s.path).Msg("db.json creado con estructura por defecto")
		return doc, nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("leer db.json")
		return nil, fmt.Errorf("%w: leer %s: %w", domain.ErrStorageUnavailable, s.path, err)
	}

	var doc entity.Document
	if err := json.Unmarshal(bytes.TrimSpace(data), &doc); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("db.json corrupto")
		return nil, fmt.Errorf("%w: parsear %s: %w", domain.ErrStorageUnavailable, s.path, err)
	}
	doc.Heal()
	return &doc, nil
}

func (s *Store) write(doc *entity.Document) error {
	doc.Heal()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", dir).Msg("crear directorio de datos")
		return fmt.Errorf("%w: crear directorio %s: %w", domain.ErrStorageUnavailable, dir, err)
	}

	if err := renameio.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("reemplazar db.json")
		return fmt.Errorf("%w: escribir %s: %w", domain.ErrStorageUnavailable, s.path, err)
	}
	return nil
}
