package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/application/usecase"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

const fiveMB = 5 * 1024 * 1024

func TestUpload_OK(t *testing.T) {
	host := &fakeImageHost{}
	uc := usecase.NewUploadUseCase(host, fiveMB)

	got, err := uc.Upload(context.Background(), ports.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "auraskin/products/a.png", got.PublicID)
	assert.Equal(t, 800, got.Width)
	assert.Len(t, host.uploads, 1)
}

func TestUpload_Rechazos(t *testing.T) {
	host := &fakeImageHost{}
	uc := usecase.NewUploadUseCase(host, fiveMB)
	tests := []struct {
		name string
		img  ports.ImageUpload
	}{
		{"vacío", ports.ImageUpload{ContentType: "image/png"}},
		{"no es imagen", ports.ImageUpload{ContentType: "application/pdf", Data: []byte("%PDF")}},
		{"muy grande", ports.ImageUpload{ContentType: "image/jpeg", Data: bytes.Repeat([]byte{1}, fiveMB+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Upload(context.Background(), tt.img)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, host.uploads)
}

func TestUpload_HostDeshabilitado(t *testing.T) {
	uc := usecase.NewUploadUseCase(nil, fiveMB)
	_, err := uc.Upload(context.Background(), ports.ImageUpload{ContentType: "image/png", Data: []byte("x")})
	assert.ErrorIs(t, err, domain.ErrImageHostDisabled)
	assert.ErrorIs(t, uc.Delete(context.Background(), "a"), domain.ErrImageHostDisabled)
}

func TestUploadDelete(t *testing.T) {
	host := &fakeImageHost{deleteErr: domain.ErrNotFound}
	uc := usecase.NewUploadUseCase(host, fiveMB)

	assert.ErrorIs(t, uc.Delete(context.Background(), "auraskin/products/x"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), " "), domain.ErrInvalidInput)
	assert.Equal(t, []string{"auraskin/products/x"}, host.deleteCalls())
}
