package config

import (
	"time"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Storage StorageConfig `json:"storage"`
	Images  ImagesConfig  `json:"images"`
	Cache   CacheConfig   `json:"cache"`
	HTTP    HTTPConfig    `json:"http"`
	Origin  OriginConfig  `json:"origin"`
	Redis   RedisConfig   `json:"redis"`
	Warmer  WarmerConfig  `json:"warmer"`
	Logging LoggingConfig `json:"logging"`
	OTel    OTelConfig    `json:"otel"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9100"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

// StorageConfig points at the object store. An empty Origin is allowed here;
// requests then fail with a configuration error.
type StorageConfig struct {
	Origin     string `json:"origin" env:"SUPABASE_URL"`
	ServiceKey string `json:"-" env:"SUPABASE_SERVICE_KEY"`
	Bucket     string `json:"bucket" env:"IMAGE_BUCKET" default:"site-images"`
	Namespace  string `json:"namespace" env:"IMAGE_NAMESPACE" default:"responsive"`
}

type ImagesConfig struct {
	DefaultQuality  int    `json:"default_quality" env:"IMAGE_DEFAULT_QUALITY" default:"75"`
	DefaultMaxWidth int    `json:"default_max_width" env:"IMAGE_DEFAULT_MAX_WIDTH" default:"1920"`
	DefaultFormats  string `json:"default_formats" env:"IMAGE_DEFAULT_FORMATS" default:"avif,webp"`
}

type CacheConfig struct {
	ResultSize  int           `json:"result_size" env:"RESULT_CACHE_SIZE" default:"2048"`
	ResultTTL   time.Duration `json:"result_ttl" env:"RESULT_CACHE_TTL" default:"6h"`
	VerdictSize int           `json:"verdict_size" env:"VERDICT_CACHE_SIZE" default:"4096"`
	VerdictTTL  time.Duration `json:"verdict_ttl" env:"VERDICT_CACHE_TTL" default:"1h"`
}

type HTTPConfig struct {
	ClientTimeout time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"15s"`
}

type OriginConfig struct {
	MaxBytes            int64         `json:"max_bytes" env:"ORIGIN_MAX_BYTES" default:"15728640"`
	HostInterval        time.Duration `json:"host_interval" env:"ORIGIN_HOST_INTERVAL" default:"200ms"`
	HostBurst           int           `json:"host_burst" env:"ORIGIN_HOST_BURST" default:"4"`
	AllowPrivateNetwork bool          `json:"allow_private_networks" env:"ORIGIN_ALLOW_PRIVATE_NETWORKS" default:"false"`
}

// RedisConfig enables the shared verdict store when URL is set.
type RedisConfig struct {
	URL string `json:"-" env:"REDIS_URL"`
}

type WarmerConfig struct {
	Enabled  bool          `json:"enabled" env:"WARMER_ENABLED" default:"false"`
	Interval time.Duration `json:"interval" env:"WARMER_INTERVAL" default:"30m"`
	Timeout  time.Duration `json:"timeout" env:"WARMER_TIMEOUT" default:"5m"`
	// URLs is a comma-separated list of "url|width|height" entries.
	URLs string `json:"urls" env:"WARMER_URLS"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"dive-media"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"dev"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_SAMPLE_RATIO" default:"1.0"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
