package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

var validLogFormats = map[string]bool{
	"json": true,
	"text": true,
}

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string
	LogFormat  string
	APIPrefix  string
	DB         DBConfig
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", c.LogFormat)
	}
	if c.APIPrefix != "" && !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("invalid API_PREFIX %q: must start with /", c.APIPrefix)
	}
	switch c.DB.Driver {
	case "postgres":
	case "sqlite":
		if c.AppEnv == "prod" {
			return fmt.Errorf("DB_DRIVER sqlite must not be used in prod environment")
		}
		if c.DB.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER is sqlite")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: must be postgres or sqlite", c.DB.Driver)
	}
	if c.DB.MaxOpenConns < 0 {
		return fmt.Errorf("invalid DB_MAX_OPEN_CONNS %d: must not be negative", c.DB.MaxOpenConns)
	}
	return nil
}

type DBConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	ApplySchema     bool
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns the connection string for the configured driver.
func (d DBConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(d.SSLMode)),
	}
	return u.String()
}

// LoadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "todo")
	v.SetDefault("DB_PASSWORD", "todo")
	v.SetDefault("DB_NAME", "todo")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "todo.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	return v
}

// Load reads configuration from the environment. When CONFIG_FILE is set the
// file (YAML, TOML or JSON) supplies values below the environment.
func Load() (Config, error) {
	v := newViper()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	driver := strings.ToLower(v.GetString("DB_DRIVER"))

	applySchema := driver == "sqlite"
	if v.IsSet("DB_APPLY_SCHEMA") {
		applySchema = v.GetBool("DB_APPLY_SCHEMA")
	}

	return Config{
		ServerPort: v.GetString("SERVER_PORT"),
		AppEnv:     v.GetString("APP_ENV"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogFormat:  strings.ToLower(v.GetString("LOG_FORMAT")),
		APIPrefix:  strings.TrimSuffix(v.GetString("API_PREFIX"), "/"),
		DB: DBConfig{
			Driver:          driver,
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			SQLitePath:      v.GetString("SQLITE_PATH"),
			ApplySchema:     applySchema,
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
	}, nil
}
