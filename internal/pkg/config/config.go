package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Store     StoreConfig
	Tracking  TrackingConfig
	CORS      CORSConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"PORT" required:"true"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	URL         string `envconfig:"DATABASE_URL"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns    int32  `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type StoreConfig struct {
	Driver            string        `envconfig:"STORE_DRIVER" default:"postgres"`
	SQLitePath        string        `envconfig:"SQLITE_PATH" default:"tracking-numbers.db"`
	SeenCacheTTL      time.Duration `envconfig:"SEEN_CACHE_TTL" default:"10m"`
	SeenCacheCapacity uint64        `envconfig:"SEEN_CACHE_CAPACITY" default:"100000"`
}

type TrackingConfig struct {
	MaxRetries   int           `envconfig:"TRACKING_MAX_RETRIES" default:"3"`
	BackoffMin   time.Duration `envconfig:"TRACKING_BACKOFF_MIN" default:"10ms"`
	BackoffMax   time.Duration `envconfig:"TRACKING_BACKOFF_MAX" default:"50ms"`
	ClaimTimeout time.Duration `envconfig:"TRACKING_CLAIM_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type TelemetryConfig struct {
	ServiceName         string        `envconfig:"OTEL_SERVICE_NAME" default:"tracking-number-generator"`
	OTLPMetricsEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"`
	ExportInterval      time.Duration `envconfig:"OTEL_METRIC_EXPORT_INTERVAL" default:"30s"`
}

// BuildDSN returns DATABASE_URL when set, otherwise a DSN assembled from the DB_* parts.
func (c *DBConfig) BuildDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.URL == "" && (c.DB.User == "" || c.DB.DBName == "") {
			return fmt.Errorf("postgres store requires DATABASE_URL or DB_USER and DB_NAME")
		}
	case StoreDriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("sqlite store requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Tracking.MaxRetries < 1 {
		return fmt.Errorf("TRACKING_MAX_RETRIES must be at least 1, got %d", c.Tracking.MaxRetries)
	}
	if c.Tracking.BackoffMin < 0 || c.Tracking.BackoffMax < c.Tracking.BackoffMin {
		return fmt.Errorf("invalid backoff window [%s, %s)", c.Tracking.BackoffMin, c.Tracking.BackoffMax)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8889", // Test port
			RequestTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
			MinConns: 1,
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
		Tracking: TrackingConfig{
			MaxRetries:   3,
			BackoffMin:   10 * time.Millisecond,
			BackoffMax:   50 * time.Millisecond,
			ClaimTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "tracking-number-generator-test",
		},
	}
}
