package ports

import (
	"context"
)

// ImageUpload es el archivo recibido por el endpoint de subida, ya validado.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// HostedImage es lo que devuelve el host tras subir la imagen.
type HostedImage struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
}

// ImageHost define el puerto de salida hacia el servicio de imágenes (Cloudinary, S3/MinIO).
// Delete devuelve domain.ErrNotFound si el host no conoce publicID.
type ImageHost interface {
	Upload(ctx context.Context, img ImageUpload) (*HostedImage, error)
	Delete(ctx context.Context, publicID string) error
}
