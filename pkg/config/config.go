package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	Images ImageConfig
	JWT    JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Version  string
	LogLevel string
	SeedDemo bool // carga los productos demo si el catálogo está vacío
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
	// RequireAdmin exige token de admin en las escrituras y en /api/users.
	RequireAdmin bool
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Drivers de almacenamiento soportados.
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// StoreConfig selecciona dónde vive el documento JSON.
type StoreConfig struct {
	Driver string // file | postgres
	Path   string // ruta del db.json cuando Driver = file
	Name   string // nombre de la fila cuando Driver = postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig caché opcional del documento. Addr vacío = sin caché.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled indica si hay un Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// Proveedores de imágenes soportados.
const (
	ImageHostNone       = "none"
	ImageHostCloudinary = "cloudinary"
	ImageHostS3         = "s3"
)

// ImageConfig configuración del host de imágenes (Cloudinary o S3/MinIO).
type ImageConfig struct {
	Host     string // none | cloudinary | s3
	Folder   string
	MaxBytes int64

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
}

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORE_PATH, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "auraskin-api"),
			Version:  getString(v, "APP_VERSION", "1.0.0"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			SeedDemo: getBool(v, "SEED_DEMO_DATA", false),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 3001),
			CORSOrigins:  getString(v, "CORS_ALLOW_ORIGINS", "*"),
			RequireAdmin: getBool(v, "REQUIRE_ADMIN", false),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreDriverFile)),
			Path:   getString(v, "STORE_PATH", "data/db.json"),
			Name:   getString(v, "STORE_NAME", "auraskin"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "auraskin"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			TTL:      time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Images: ImageConfig{
			Host:     strings.ToLower(getString(v, "IMAGE_HOST", ImageHostNone)),
			Folder:   getString(v, "IMAGE_FOLDER", "auraskin/products"),
			MaxBytes: int64(getInt(v, "UPLOAD_MAX_BYTES", 5*1024*1024)),

			CloudinaryCloudName: getString(v, "CLOUDINARY_CLOUD_NAME", ""),
			CloudinaryAPIKey:    getString(v, "CLOUDINARY_API_KEY", ""),
			CloudinaryAPISecret: getString(v, "CLOUDINARY_API_SECRET", ""),

			S3Bucket:    getString(v, "S3_BUCKET", ""),
			S3Region:    getString(v, "S3_REGION", "us-east-1"),
			S3Endpoint:  getString(v, "S3_ENDPOINT", ""),
			S3AccessKey: getString(v, "S3_ACCESS_KEY", ""),
			S3SecretKey: getString(v, "S3_SECRET_KEY", ""),
			S3PublicURL: getString(v, "S3_PUBLIC_URL", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "auraskin-api"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverPostgres:
	default:
		return fmt.Errorf("config: STORE_DRIVER desconocido %q", c.Store.Driver)
	}
	switch c.Images.Host {
	case ImageHostNone, ImageHostCloudinary, ImageHostS3:
	default:
		return fmt.Errorf("config: IMAGE_HOST desconocido %q", c.Images.Host)
	}
	if c.Images.MaxBytes <= 0 {
		return fmt.Errorf("config: UPLOAD_MAX_BYTES debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
