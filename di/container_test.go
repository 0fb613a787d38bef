package di

import (
	"context"
	"testing"
	"time"

	"dive-media/config"
	"dive-media/domain"
	"dive-media/utils/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Bucket: "site-images", Namespace: "responsive"},
		Images:  config.ImagesConfig{DefaultQuality: 75, DefaultMaxWidth: 1920, DefaultFormats: "avif,webp"},
		Cache:   config.CacheConfig{ResultSize: 16, ResultTTL: time.Minute, VerdictSize: 16, VerdictTTL: time.Minute},
		HTTP:    config.HTTPConfig{ClientTimeout: time.Second},
		Origin:  config.OriginConfig{MaxBytes: domain.OriginalMaxSize, HostBurst: 1},
	}
}

func TestNewApplicationComponents_WithoutRedis(t *testing.T) {
	c, err := NewApplicationComponents(testConfig())
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.NotNil(t, c.ResponsiveImageUsecase)
	assert.Nil(t, c.VerdictStore)
}

func TestNewApplicationComponents_MissingOriginIsRequestError(t *testing.T) {
	c, err := NewApplicationComponents(testConfig())
	require.NoError(t, err)

	_, err = c.ResponsiveImageUsecase.GetResponsiveImage(context.Background(), &domain.ImageRequest{
		SourceURL: "https://example.com/a.png",
		Width:     800,
	})
	assert.True(t, errors.IsConfigurationError(err))
}

func TestNewApplicationComponents_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.URL = "redis://" + mr.Addr()

	c, err := NewApplicationComponents(cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	require.NotNil(t, c.VerdictStore)
	assert.NoError(t, c.VerdictStore.Ping(context.Background()))
}

func TestNewApplicationComponents_InvalidInputs(t *testing.T) {
	cfg := testConfig()
	cfg.Images.DefaultFormats = "gif"
	_, err := NewApplicationComponents(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Redis.URL = "not-a-redis-url"
	_, err = NewApplicationComponents(cfg)
	assert.Error(t, err)
}
