package http

import (
	"errors"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/application/usecase"
	"github.com/jhoicas/auraskin-api/internal/domain"
)

// UploadHandler pasarela de imágenes hacia el host configurado.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen de producto
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen (máx. 5MB)"
// @Success      200    {object}  dto.Envelope
// @Failure      400    {object}  dto.Envelope
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, "No image file provided"))
	}
	// se rechaza antes de leer el archivo completo
	if err := h.uc.CheckSize(fh.Size); err != nil {
		return writeError(c, err, "")
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err, "Error reading upload")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err, "Error reading upload")
	}

	out, err := h.uc.Upload(c.UserContext(), ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return writeError(c, err, "Upload failed")
	}
	return c.JSON(dto.OK("Image uploaded successfully", out))
}

// Delete godoc
// @Summary      Borrar imagen por public_id
// @Tags         upload
// @Produce      json
// @Param        publicId  path  string  true  "public_id (puede contener /)"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/upload/{publicId} [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	publicID, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, "Invalid public id"))
	}
	if err := h.uc.Delete(c.UserContext(), publicID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Image not found")
		}
		return writeError(c, err, "Delete failed")
	}
	return c.JSON(dto.OK("Image deleted successfully", nil))
}
