package usecase_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/jsonfile"
)

func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	return jsonfile.NewStore(filepath.Join(t.TempDir(), "db.json"), nil)
}

// fakeImageHost registra las llamadas al host de imágenes.
type fakeImageHost struct {
	mu        sync.Mutex
	uploads   []ports.ImageUpload
	deleted   []string
	deleteErr error
}

func (f *fakeImageHost) Upload(_ context.Context, img ports.ImageUpload) (*ports.HostedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, img)
	return &ports.HostedImage{
		URL:      "https://img.example/" + img.Filename,
		PublicID: "auraskin/products/" + img.Filename,
		Width:    800,
		Height:   800,
		Format:   "png",
	}, nil
}

func (f *fakeImageHost) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return f.deleteErr
}

func (f *fakeImageHost) deleteCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// fakePDF devuelve un PDF mínimo y guarda lo que recibió.
type fakePDF struct {
	title    string
	products []entity.Product
}

func (f *fakePDF) GenerateCatalogPDF(_ context.Context, title string, _ time.Time, products []entity.Product) ([]byte, error) {
	f.title = title
	f.products = products
	return []byte("%PDF-1.3"), nil
}
