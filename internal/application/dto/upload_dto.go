package dto

// UploadResponse datos de la imagen subida (mismas claves que la respuesta de Cloudinary).
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
}
