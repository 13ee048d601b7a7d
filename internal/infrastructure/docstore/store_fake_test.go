package docstore_test

import (
	"context"
	"sync"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// memStore DocumentStore en memoria que cuenta las escrituras efectivas.
type memStore struct {
	mu     sync.Mutex
	doc    *entity.Document
	writes int
}

func newMemStore() *memStore {
	return &memStore{doc: entity.NewDocument()}
}

func (s *memStore) Read(_ context.Context) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), nil
}

func (s *memStore) Write(_ context.Context, doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.writes++
	return nil
}

func (s *memStore) Update(_ context.Context, fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.doc.Clone()
	if err := fn(doc); err != nil {
		return err
	}
	s.doc = doc
	s.writes++
	return nil
}

func (s *memStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
