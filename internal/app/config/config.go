package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	// TrustedProxies адреса прокси, чьим X-Forwarded-For можно верить; пусто: не верить никому
	TrustedProxies []string
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
}

type DatabaseConfig struct {
	Driver   string // postgres, mysql, sqlite
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // файл базы для sqlite
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
	Issuer    string
}

// RedisConfig пустой Host отключает blacklist токенов
type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DB          int
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// MinIOConfig пустой Endpoint отключает загрузку изображений карточек
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RateLimitConfig ограничение на /login и регистрацию, RPS <= 0 выключает лимит
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowOrigins []string
}

const minSecretLength = 16

const (
	defaultPostgresPort = 5432
	defaultMySQLPort    = 3306
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrShortSecret   = fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
)

func NewConfig() (*Config, error) {
	return Load(configNameFromEnv(), "config", ".")
}

// NewDatabaseConfig для утилит, которым нужна только база (cmd/migrate):
// JWT секрет не требуется
func NewDatabaseConfig() (*Config, error) {
	return LoadDatabase(configNameFromEnv(), "config", ".")
}

func configNameFromEnv() string {
	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}
	return configName
}

// Load читает toml-конфиг из первой найденной директории; переменные окружения
// перекрывают файл (JWT_SECRET -> JWT.Secret, DATABASE_DRIVER -> Database.Driver).
func Load(configName string, paths ...string) (*Config, error) {
	cfg, err := read(configName, paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase как Load, но проверяет только настройки базы
func LoadDatabase(configName string, paths ...string) (*Config, error) {
	cfg, err := read(configName, paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(configName string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Warn("config file not found, using defaults and environment")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Database.applyDriverDefaults()

	log.Info("config parsed")

	return cfg, nil
}

// applyDriverDefaults порт по умолчанию зависит от драйвера
func (d *DatabaseConfig) applyDriverDefaults() {
	if d.Port != 0 {
		return
	}
	switch d.Driver {
	case DriverPostgres:
		d.Port = defaultPostgresPort
	case DriverMySQL:
		d.Port = defaultMySQLPort
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("servicehost", "0.0.0.0")
	v.SetDefault("serviceport", 8080)
	v.SetDefault("trustedproxies", []string{})

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 0) // см. applyDriverDefaults
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "kanban")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "kanban.db")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiresin", time.Hour)
	v.SetDefault("jwt.issuer", "kanban")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.user", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dialtimeout", 10*time.Second)
	v.SetDefault("redis.readtimeout", 10*time.Second)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.accesskey", "")
	v.SetDefault("minio.secretkey", "")
	v.SetDefault("minio.bucket", "card-images")
	v.SetDefault("minio.usessl", false)

	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 5)

	v.SetDefault("cors.alloworigins", []string{})
}

// Validate проверяет то, без чего сервис не должен стартовать
func (c *Config) Validate() error {
	switch {
	case c.JWT.Secret == "":
		return ErrMissingSecret
	case len(c.JWT.Secret) < minSecretLength:
		return ErrShortSecret
	case c.JWT.ExpiresIn <= 0:
		return fmt.Errorf("jwt expiry must be positive, got %s", c.JWT.ExpiresIn)
	}

	return c.ValidateDatabase()
}

func (c *Config) ValidateDatabase() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	return nil
}
