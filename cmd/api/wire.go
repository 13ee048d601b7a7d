package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/cache"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/imagehost"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/jsonfile"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/auraskin-api/pkg/config"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

// openStore arma el DocumentStore según STORE_DRIVER y, si hay REDIS_ADDR, lo envuelve con la caché.
// El func devuelto libera las conexiones abiertas.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.DocumentStore, func(), error) {
	var (
		store   repository.DocumentStore
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		pg := postgres.NewDocumentStore(pool, cfg.Store.Name, log)
		if err := pg.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, nil, err
		}
		store = pg
	default:
		store = jsonfile.NewStore(cfg.Store.Path, log)
	}

	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		store = cache.NewCachingDocumentStore(rdb, cfg.Redis.TTL, store, cfg.Store.Name, log)
	}
	return store, closeAll, nil
}

// openImageHost devuelve nil cuando IMAGE_HOST=none: la subida queda deshabilitada.
func openImageHost(ctx context.Context, cfg config.ImageConfig) (ports.ImageHost, error) {
	switch cfg.Host {
	case config.ImageHostCloudinary:
		if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
			return nil, fmt.Errorf("cloudinary: faltan CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY o CLOUDINARY_API_SECRET")
		}
		return imagehost.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.Folder), nil
	case config.ImageHostS3:
		host, err := imagehost.NewS3Host(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return host, nil
	default:
		return nil, nil
	}
}
