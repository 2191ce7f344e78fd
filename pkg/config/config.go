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
	App           AppConfig
	Log           LogConfig
	DB            DBConfig
	Mongo         MongoConfig
	JWT           JWTConfig
	HTTP          HTTPConfig
	Storage       StorageConfig
	Notifications NotificationsConfig
	I18n          I18nConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel y salida opcional a archivo rotado.
type LogConfig struct {
	Level      string
	File       string // vacío = solo stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
// Driver "memory" levanta repositorios en memoria (desarrollo local sin base de datos).
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
	MaxConns    int32
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

// MongoConfig almacén documental de notificaciones.
type MongoConfig struct {
	URI                     string
	Database                string
	NotificationsCollection string
}

// JWTConfig verificación RS256. La llave privada solo se usa en cmd/devtoken.
type JWTConfig struct {
	PublicKeyPath   string
	PrivateKeyPath  string
	ExpectedSubject string // vacío = no se compara el sub
	Issuer          string
	Expiration      int // minutos
	AdminRole       string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig almacenamiento de imágenes de categorías.
type StorageConfig struct {
	Provider  string // local | s3
	LocalPath string
	BaseURL   string
	S3        S3Config
}

// S3Config credenciales de un almacenamiento compatible con S3 (MinIO, R2).
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

// NotificationsConfig pool de publicación y relé NATS opcional.
type NotificationsConfig struct {
	Workers        int
	QueueSize      int
	PublishTimeout time.Duration
	NATSURL        string // vacío = fan-out solo local
	NATSSubject    string
}

// I18nConfig idioma por defecto de los mensajes.
type I18nConfig struct {
	DefaultLocale string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, MONGO_URI, JWT_PUBLIC_KEY_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ticket-logger-api"),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			File:       getString(v, "LOG_FILE", ""),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 50),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getInt(v, "LOG_MAX_AGE_DAYS", 14),
		},
		DB: DBConfig{
			Driver:      getString(v, "DB_DRIVER", "postgres"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "ticket_logger"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 20)),
		},
		Mongo: MongoConfig{
			URI:                     getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database:                getString(v, "MONGO_DB", "ticket_logger"),
			NotificationsCollection: getString(v, "MONGO_NOTIFICATIONS_COLLECTION", "notifications"),
		},
		JWT: JWTConfig{
			PublicKeyPath:   getString(v, "JWT_PUBLIC_KEY_PATH", "./keys/public.pem"),
			PrivateKeyPath:  getString(v, "JWT_PRIVATE_KEY_PATH", "./keys/private.pem"),
			ExpectedSubject: getString(v, "JWT_EXPECTED_SUBJECT", ""),
			Issuer:          getString(v, "JWT_ISSUER", "ticket-logger"),
			Expiration:      getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			AdminRole:       getString(v, "JWT_ADMIN_ROLE", "ROLE_ADMIN"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 10),
		},
		Storage: StorageConfig{
			Provider:  getString(v, "STORAGE_PROVIDER", "local"),
			LocalPath: getString(v, "STORAGE_LOCAL_PATH", "./uploads"),
			BaseURL:   getString(v, "STORAGE_BASE_URL", "/images"),
			S3: S3Config{
				Endpoint:  getString(v, "S3_ENDPOINT", "localhost:9000"),
				AccessKey: getString(v, "S3_ACCESS_KEY", ""),
				SecretKey: getString(v, "S3_SECRET_KEY", ""),
				Bucket:    getString(v, "S3_BUCKET", "categories"),
				UseSSL:    getBool(v, "S3_USE_SSL", false),
				Region:    getString(v, "S3_REGION", "us-east-1"),
				PublicURL: getString(v, "S3_PUBLIC_URL", ""),
			},
		},
		Notifications: NotificationsConfig{
			Workers:        getInt(v, "NOTIFY_WORKERS", 4),
			QueueSize:      getInt(v, "NOTIFY_QUEUE_SIZE", 256),
			PublishTimeout: getDuration(v, "NOTIFY_PUBLISH_TIMEOUT", 5*time.Second),
			NATSURL:        getString(v, "NATS_URL", ""),
			NATSSubject:    getString(v, "NATS_SUBJECT", "notifications"),
		},
		I18n: I18nConfig{
			DefaultLocale: getString(v, "DEFAULT_LOCALE", "es"),
		},
	}

	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "memory" {
		return nil, fmt.Errorf("config: DB_DRIVER inválido: %q", cfg.DB.Driver)
	}
	if cfg.Storage.Provider != "local" && cfg.Storage.Provider != "s3" {
		return nil, fmt.Errorf("config: STORAGE_PROVIDER inválido: %q", cfg.Storage.Provider)
	}
	return cfg, nil
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

// getDuration acepta "5s", "250ms" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := v.GetString(key)
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
