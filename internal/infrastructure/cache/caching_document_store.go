package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/domain/repository"
	"github.com/jhoicas/auraskin-api/pkg/logger"
)

var _ repository.DocumentStore = (*CachingDocumentStore)(nil)

// CachingDocumentStore decora un DocumentStore con Redis: Read sirve desde caché,
// Write y Update escriben primero en el store, suben la generación y luego invalidan la clave.
// Read solo guarda lo que leyó si la generación no cambió mientras leía del store.
// Con rdb nil todas las llamadas pasan directo al store interno.
type CachingDocumentStore struct {
	inner     repository.DocumentStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       *logger.Logger
}

// NewCachingDocumentStore construye el decorador. ttl <= 0 usa 5 minutos; namespace vacío usa "auraskin".
func NewCachingDocumentStore(rdb *redis.Client, ttl time.Duration, inner repository.DocumentStore, namespace string, log *logger.Logger) *CachingDocumentStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "auraskin"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachingDocumentStore{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace, log: log}
}

func (c *CachingDocumentStore) key() string {
	return c.namespace + ":document"
}

func (c *CachingDocumentStore) genKey() string {
	return c.namespace + ":document:gen"
}

// setIfGenScript guarda el documento solo si la generación sigue siendo ARGV[1].
const setIfGenScript = `if (redis.call('GET', KEYS[2]) or '0') == ARGV[1] then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
  return 1
end
return 0`

// Read devuelve el documento cacheado o lo lee del store y lo guarda con TTL.
func (c *CachingDocumentStore) Read(ctx context.Context) (*entity.Document, error) {
	if c.rdb == nil {
		return c.inner.Read(ctx)
	}

	key := c.key()
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var doc entity.Document
		if err := json.Unmarshal(b, &doc); err == nil {
			doc.Heal()
			return &doc, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	gen, err := c.rdb.Get(ctx, c.genKey()).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		c.log.Warn().Err(err).Msg("no se pudo leer la generación de la caché")
		return c.inner.Read(ctx)
	}

	doc, err := c.inner.Read(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(doc); err == nil {
		keys := []string{key, c.genKey()}
		if err := c.rdb.Eval(ctx, setIfGenScript, keys, gen, string(b), c.ttl.Milliseconds()).Err(); err != nil {
			c.log.Warn().Err(err).Msg("no se pudo guardar el documento en caché")
		}
	}
	return doc, nil
}

// Write escribe en el store e invalida la caché.
func (c *CachingDocumentStore) Write(ctx context.Context, doc *entity.Document) error {
	if err := c.inner.Write(ctx, doc); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update delega en el store (que garantiza la atomicidad) e invalida la caché si hubo escritura.
func (c *CachingDocumentStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	if err := c.inner.Update(ctx, fn); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingDocumentStore) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, c.genKey()).Err(); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo subir la generación de la caché")
	}
	if err := c.rdb.Del(ctx, c.key()).Err(); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo invalidar la caché del documento")
	}
}
