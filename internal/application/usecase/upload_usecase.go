package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

const (
	msgNoImage        = "No image file provided"
	msgOnlyImages     = "Only image files are allowed!"
	msgPublicIDNeeded = "Image public id is required"
)

// UploadUseCase valida los archivos y los delega al ImageHost.
type UploadUseCase struct {
	host     ports.ImageHost
	maxBytes int64
}

// NewUploadUseCase construye el caso de uso. host nil deja la subida deshabilitada.
func NewUploadUseCase(host ports.ImageHost, maxBytes int64) *UploadUseCase {
	return &UploadUseCase{host: host, maxBytes: maxBytes}
}

// MaxBytes tamaño máximo aceptado por archivo.
func (uc *UploadUseCase) MaxBytes() int64 { return uc.maxBytes }

// CheckSize rechaza archivos mayores a MaxBytes.
func (uc *UploadUseCase) CheckSize(size int64) error {
	if size > uc.maxBytes {
		return domain.NewValidationError(fmt.Sprintf("File too large (max %dMB)", uc.maxBytes/(1024*1024)))
	}
	return nil
}

// Upload valida tamaño y tipo y sube la imagen.
func (uc *UploadUseCase) Upload(ctx context.Context, img ports.ImageUpload) (*dto.UploadResponse, error) {
	if len(img.Data) == 0 {
		return nil, domain.NewValidationError(msgNoImage)
	}
	if err := uc.CheckSize(int64(len(img.Data))); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return nil, domain.NewValidationError(msgOnlyImages)
	}
	if uc.host == nil {
		return nil, domain.ErrImageHostDisabled
	}
	hosted, err := uc.host.Upload(ctx, img)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{
		URL:      hosted.URL,
		PublicID: hosted.PublicID,
		Width:    hosted.Width,
		Height:   hosted.Height,
		Format:   hosted.Format,
	}, nil
}

// Delete borra la imagen del host; domain.ErrNotFound si el host no la conoce.
func (uc *UploadUseCase) Delete(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return domain.NewValidationError(msgPublicIDNeeded)
	}
	if uc.host == nil {
		return domain.ErrImageHostDisabled
	}
	return uc.host.Delete(ctx, publicID)
}
