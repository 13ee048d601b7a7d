// Package imagehost implementa el puerto ImageHost sobre Cloudinary y sobre S3/MinIO.
package imagehost

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Inspect lee solo la cabecera de la imagen y devuelve ancho, alto y formato (jpeg, png, gif, webp).
func Inspect(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("imagen no reconocida: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}

// extension devuelve la extensión de archivo para un formato de image.DecodeConfig.
func extension(format string) string {
	if format == "jpeg" {
		return ".jpg"
	}
	return "." + format
}
