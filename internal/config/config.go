package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FilesDriverLocal = "local"
	FilesDriverGCS   = "gcs"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and can be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits request bodies, photos included
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"10485760" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; any origin is allowed when empty
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"registry" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Files selects and configures where profile photos are stored
	Files struct {
		// Driver is either "local" or "gcs"
		Driver string `env:"FILES_DRIVER" env-default:"local" yaml:"driver"`
		// Root is the base directory of the local driver
		Root string `env:"FILES_ROOT" env-default:"./data/files" yaml:"root"`
		// Bucket is the bucket of the gcs driver
		Bucket string `env:"FILES_GCS_BUCKET" yaml:"bucket"`
		// Prefix is prepended to every object name of the gcs driver
		Prefix string `env:"FILES_GCS_PREFIX" yaml:"prefix"`
		// CredentialsFile points at a service account key; application default credentials are used when empty
		CredentialsFile string `env:"FILES_GCS_CREDENTIALS_FILE" yaml:"credentialsFile"`
	} `yaml:"files"`

	// Session configures issued session tokens
	Session struct {
		// PrivateKey is the PEM encoded RSA key used to sign session tokens
		PrivateKey string `env:"SESSION_PRIVATE_KEY" yaml:"privateKey"`
		// Issuer is set as the iss claim
		Issuer string `env:"SESSION_ISSUER" env-default:"registry" yaml:"issuer"`
		// TTL is how long a session token stays valid
		TTL time.Duration `env:"SESSION_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"session"`

	// Registration holds the defaults applied when registering a user
	Registration struct {
		// DefaultRole is the name of the role assigned to new users
		DefaultRole string `env:"REGISTRATION_DEFAULT_ROLE" env-default:"usuario" yaml:"defaultRole"`
		// DefaultBirthDate is used when the request carries none (YYYY-MM-DD)
		DefaultBirthDate string `env:"REGISTRATION_DEFAULT_BIRTH_DATE" env-default:"2000-01-01" yaml:"defaultBirthDate"`
		// DefaultSexID is the sex catalog entry assigned at registration
		DefaultSexID int64 `env:"REGISTRATION_DEFAULT_SEX_ID" env-default:"1" yaml:"defaultSexId"`
		// RoleCacheTTL is how long the role catalog is cached in memory
		RoleCacheTTL time.Duration `env:"REGISTRATION_ROLE_CACHE_TTL" env-default:"10m" yaml:"roleCacheTtl"`
	} `yaml:"registration"`

	// Worker configures background job processing
	Worker struct {
		// MaxWorkers is the number of concurrent jobs processed by this process
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the maximum number of attempts for orphan file cleanup jobs
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be expressed with cleanenv defaults.
func (c *Config) Validate() error {
	switch c.Files.Driver {
	case FilesDriverLocal:
		if c.Files.Root == "" {
			return fmt.Errorf("files.root is required by the %s driver", FilesDriverLocal)
		}
	case FilesDriverGCS:
		if c.Files.Bucket == "" {
			return fmt.Errorf("files.bucket is required by the %s driver", FilesDriverGCS)
		}
	default:
		return fmt.Errorf("unknown files driver %q", c.Files.Driver)
	}

	if _, err := c.DefaultBirthDate(); err != nil {
		return err
	}
	if c.Registration.DefaultSexID <= 0 {
		return errors.New("registration.defaultSexId must be positive")
	}

	return nil
}

// DefaultBirthDate parses Registration.DefaultBirthDate as a UTC date.
func (c *Config) DefaultBirthDate() (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, c.Registration.DefaultBirthDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse registration.defaultBirthDate: %w", err)
	}

	return d, nil
}
