package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AuthStatic = "static"
	AuthJWT    = "jwt"
)

type Config struct {
	Environment string         `yaml:"environment"`
	Port        string         `yaml:"port"`
	LogLevel    string         `yaml:"log_level"`
	StaticDir   string         `yaml:"static_dir"`
	Database    DatabaseConfig `yaml:"database"`
	Auth        AuthConfig     `yaml:"auth"`

	// ExposeStoreErrors controls whether raw database messages reach API clients.
	ExposeStoreErrors bool `yaml:"expose_store_errors"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	Path            string        `yaml:"path"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type AuthConfig struct {
	Mode      string        `yaml:"mode"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	Token     string        `yaml:"token"`
	JWTSecret string        `yaml:"jwt_secret"`
	JWTTTL    time.Duration `yaml:"jwt_ttl"`
}

// Load reads .env (if any), then the YAML file named by CONFIG_FILE (if any),
// and finally lets environment variables override what was read.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Environment: "development",
		Port:        "5000",
		LogLevel:    "info",
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
		},
		Auth: AuthConfig{
			Mode:     AuthStatic,
			Username: "admin",
			Password: "admin123",
			Token:    "admin-token",
			JWTTTL:   12 * time.Hour,
		},
		ExposeStoreErrors: true,
	}
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Environment, "ENVIRONMENT")
	setString(&c.Port, "PORT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.StaticDir, "STATIC_DIR")

	db := &c.Database
	setString(&db.Driver, "DB_DRIVER")
	setString(&db.Host, "DB_HOST")
	setString(&db.User, "DB_USER")
	setString(&db.Password, "DB_PASSWORD")
	setString(&db.Name, "DB_NAME")
	setString(&db.SSLMode, "DB_SSLMODE")
	setString(&db.Path, "DB_PATH")

	auth := &c.Auth
	setString(&auth.Mode, "AUTH_MODE")
	setString(&auth.Username, "ADMIN_USERNAME")
	setString(&auth.Password, "ADMIN_PASSWORD")
	setString(&auth.Token, "ADMIN_TOKEN")
	setString(&auth.JWTSecret, "JWT_SECRET")

	if c.IsProduction() {
		c.ExposeStoreErrors = false
	}

	if err := setInt(&db.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&db.MaxOpenConns, "DB_MAX_OPEN_CONNS"); err != nil {
		return err
	}
	if err := setInt(&db.MaxIdleConns, "DB_MAX_IDLE_CONNS"); err != nil {
		return err
	}
	if err := setDuration(&db.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME"); err != nil {
		return err
	}
	if err := setDuration(&auth.JWTTTL, "JWT_TTL"); err != nil {
		return err
	}
	return setBool(&c.ExposeStoreErrors, "EXPOSE_STORE_ERRORS")
}

func (c *Config) Validate() error {
	db := c.Database
	switch db.Driver {
	case DriverPostgres:
		if db.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if db.User == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if db.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case DriverSQLite:
		if db.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected postgres or sqlite)", db.Driver)
	}

	switch c.Auth.Mode {
	case AuthStatic:
	case AuthJWT:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
		}
	default:
		return fmt.Errorf("unsupported AUTH_MODE %q (expected static or jwt)", c.Auth.Mode)
	}
	return nil
}

// DSN builds the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s must be a duration: %w", key, err)
	}
	*dst = d
	return nil
}

func setBool(dst *bool, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	*dst = b
	return nil
}
