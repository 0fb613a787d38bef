package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"dive-media/domain"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateStorageConfig(&config.Storage); err != nil {
		return fmt.Errorf("storage config validation failed: %w", err)
	}

	if err := validateImagesConfig(&config.Images); err != nil {
		return fmt.Errorf("images config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if config.HTTP.ClientTimeout <= 0 {
		return fmt.Errorf("HTTP config validation failed: client timeout must be positive, got %v", config.HTTP.ClientTimeout)
	}

	if err := validateOriginConfig(&config.Origin); err != nil {
		return fmt.Errorf("origin config validation failed: %w", err)
	}

	if err := validateWarmerConfig(&config.Warmer); err != nil {
		return fmt.Errorf("warmer config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if config.OTel.SampleRatio < 0 || config.OTel.SampleRatio > 1 {
		return fmt.Errorf("otel config validation failed: sample ratio must be between 0 and 1, got %v", config.OTel.SampleRatio)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateStorageConfig(config *StorageConfig) error {
	// Origin may be empty; only a malformed one is rejected.
	if config.Origin != "" {
		u, err := url.Parse(config.Origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("storage origin must be an absolute http(s) URL, got %q", config.Origin)
		}
	}

	if strings.TrimSpace(config.Bucket) == "" {
		return fmt.Errorf("bucket cannot be empty")
	}

	if strings.Contains(strings.Trim(config.Namespace, "/"), "//") {
		return fmt.Errorf("namespace cannot contain empty segments, got %q", config.Namespace)
	}

	return nil
}

func validateImagesConfig(config *ImagesConfig) error {
	if config.DefaultQuality < domain.MinImageQuality || config.DefaultQuality > domain.MaxImageQuality {
		return fmt.Errorf("default quality must be between %d and %d, got %d", domain.MinImageQuality, domain.MaxImageQuality, config.DefaultQuality)
	}

	if config.DefaultMaxWidth < 1 {
		return fmt.Errorf("default max width must be at least 1, got %d", config.DefaultMaxWidth)
	}

	if _, err := ParseFormats(config.DefaultFormats); err != nil {
		return err
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.ResultSize < 1 {
		return fmt.Errorf("result cache size must be at least 1, got %d", config.ResultSize)
	}

	if config.VerdictSize < 1 {
		return fmt.Errorf("verdict cache size must be at least 1, got %d", config.VerdictSize)
	}

	// Zero TTL means entries never expire.
	if config.ResultTTL < 0 || config.VerdictTTL < 0 {
		return fmt.Errorf("cache TTLs cannot be negative, got result=%v verdict=%v", config.ResultTTL, config.VerdictTTL)
	}

	return nil
}

func validateOriginConfig(config *OriginConfig) error {
	if config.MaxBytes < 1 {
		return fmt.Errorf("max bytes must be at least 1, got %d", config.MaxBytes)
	}

	if config.HostInterval < 0 {
		return fmt.Errorf("host interval cannot be negative, got %v", config.HostInterval)
	}

	if config.HostBurst < 1 {
		return fmt.Errorf("host burst must be at least 1, got %d", config.HostBurst)
	}

	return nil
}

func validateWarmerConfig(config *WarmerConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.Interval <= 0 {
		return fmt.Errorf("interval must be positive when the warmer is enabled, got %v", config.Interval)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive when the warmer is enabled, got %v", config.Timeout)
	}

	if _, err := ParseWarmTargets(config.URLs); err != nil {
		return err
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, strings.ToLower(config.Level)) {
		return fmt.Errorf("log level must be one of %v, got %s", validLevels, config.Level)
	}
	return nil
}
