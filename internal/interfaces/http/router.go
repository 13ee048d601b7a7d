package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auraskin-api/internal/application/auth"
	"github.com/jhoicas/auraskin-api/internal/application/usecase"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	UploadUC  *usecase.UploadUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	Version   string
	// RequireAdmin protege las escrituras de products, users y upload con un token de admin.
	RequireAdmin bool
}

// Router registra las rutas de la API.
// Debe llamarse después de montar cualquier otra ruta: termina con el fallback 404.
func Router(app *fiber.App, deps RouterDeps) {
	var guard []fiber.Handler
	if deps.RequireAdmin {
		guard = []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}
	}
	admin := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, guard...), h)
	}

	system := NewSystemHandler(deps.Version)
	app.Get("/", system.Banner)

	api := app.Group("/api")
	api.Get("/health", system.Health)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Products (catalog.pdf antes de /:id)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", admin(productHandler.Create)...)
	products.Get("/catalog.pdf", productHandler.CatalogPDF)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", admin(productHandler.Update)...)
	products.Delete("/:id", admin(productHandler.Delete)...)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", admin(userHandler.List)...)
	users.Post("/", admin(userHandler.Create)...)
	users.Get("/:id", admin(userHandler.GetByID)...)
	users.Put("/:id", admin(userHandler.Update)...)
	users.Delete("/:id", admin(userHandler.Delete)...)

	// Upload
	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", admin(uploadHandler.Upload)...)
	api.Delete("/upload/*", admin(uploadHandler.Delete)...)

	app.Use(NotFound)
}
