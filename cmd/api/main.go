package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/auraskin-api/docs"
	"github.com/jhoicas/auraskin-api/internal/application/auth"
	"github.com/jhoicas/auraskin-api/internal/application/usecase"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/docstore"
	infrapdf "github.com/jhoicas/auraskin-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/auraskin-api/internal/interfaces/http"
	"github.com/jhoicas/auraskin-api/pkg/config"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title           AuraSkin API
// @version         1.0
// @description     API de catálogo, usuarios y sesión de AuraSkin sobre un documento JSON.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("image_host", cfg.Images.Host).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	images, err := openImageHost(ctx, cfg.Images)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar host de imágenes")
	}

	productRepo := docstore.NewProductRepository(store)
	userRepo := docstore.NewUserRepository(store)
	sessionRepo := docstore.NewSessionRepository(store)

	productUC := usecase.NewProductUseCase(productRepo, images, infrapdf.NewCatalogPDFGenerator(), "AuraSkin", log.Named("products"))
	userUC := usecase.NewUserUseCase(userRepo)
	uploadUC := usecase.NewUploadUseCase(images, cfg.Images.MaxBytes)
	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.App.SeedDemo {
		if _, err := productUC.SeedDemo(ctx); err != nil {
			log.Error().Err(err).Msg("cargar catálogo demo")
		}
	}

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		BodyLimit:   int(uploadUC.MaxBytes()) + 1024*1024,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log.Named("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		UserUC:       userUC,
		UploadUC:     uploadUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		Version:      cfg.App.Version,
		RequireAdmin: cfg.HTTP.RequireAdmin,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
