package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/limbo/flicks/internal/repository"
)

const (
	EnvPrefix     = "FLICKS_"
	ConfigPathEnv = "FLICKS_CONFIG"
	DotEnvPath    = "./configs/.env"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Postgres PostgresConfig `koanf:"postgres"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
	Catalog  CatalogConfig  `koanf:"catalog"`
}

type ServerConfig struct {
	Address     string `koanf:"address"`
	CORSOrigins string `koanf:"cors_origins"`
	// Requests per minute per client IP, 0 disables limiting
	RateLimit int `koanf:"rate_limit"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DB       string `koanf:"db"`
	SSLMode  string `koanf:"ssl_mode"`
}

type AuthConfig struct {
	JWTSecret    string        `koanf:"jwt_secret"`
	SessionTTL   time.Duration `koanf:"session_ttl"`
	CookieSecure bool          `koanf:"cookie_secure"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type CatalogConfig struct {
	ItemsPerPage int `koanf:"items_per_page"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:     ":8080",
			CORSOrigins: "*",
			RateLimit:   300,
		},
		Postgres: PostgresConfig{
			Address: "localhost:5432",
			User:    "postgres",
			DB:      "flicks",
			SSLMode: "disable",
		},
		Auth: AuthConfig{
			SessionTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			ItemsPerPage: 12,
		},
	}
}

// Load layers defaults, the optional YAML file at path (or FLICKS_CONFIG) and
// FLICKS_ environment variables, later layers winning. Variables from
// ./configs/.env are exported first when that file exists.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading envs error: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults error: %w", err)
	}
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s error: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("loading environment error: %w", err)
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FLICKS_POSTGRES__ADDRESS -> postgres.address
func envTransformFunc(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl must be positive")
	}
	if c.Catalog.ItemsPerPage <= 0 || c.Catalog.ItemsPerPage > 100 {
		return errors.New("catalog.items_per_page must be within 1..100")
	}
	return nil
}

func (c *Config) CORSOrigins() []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) DB() *repository.PGCfg {
	return &repository.PGCfg{
		Address:  c.Postgres.Address,
		Username: c.Postgres.User,
		Password: c.Postgres.Password,
		DB:       c.Postgres.DB,
		SSLMode:  c.Postgres.SSLMode,
	}
}
