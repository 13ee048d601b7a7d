package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auraskin-api/internal/application/dto"
)

// SystemHandler banner y health check.
type SystemHandler struct {
	version string
	now     func() time.Time
}

// NewSystemHandler construye el handler.
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{version: version, now: time.Now}
}

// Banner godoc
// @Summary      Información del servidor
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.BannerResponse
// @Router       / [get]
func (h *SystemHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(dto.BannerResponse{
		Message: "AuraSkin API Server",
		Version: h.version,
		Endpoints: map[string]string{
			"products": "/api/products",
			"users":    "/api/users",
			"auth":     "/api/auth",
			"upload":   "/api/upload",
			"health":   "/api/health",
		},
	})
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// NotFound respuesta para rutas no registradas.
func NotFound(c *fiber.Ctx) error {
	return notFound(c, "Endpoint not found")
}
