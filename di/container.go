package di

import (
	"fmt"
	"net/http"

	"dive-media/config"
	"dive-media/driver/supabase_storage"
	"dive-media/driver/verdict_redis"
	"dive-media/gateway/origin_fetch_gateway"
	"dive-media/gateway/original_store_gateway"
	"dive-media/gateway/placeholder_gateway"
	"dive-media/gateway/transform_probe_gateway"
	"dive-media/port/transform_port"
	"dive-media/usecase/responsive_image_usecase"
	"dive-media/utils/rate_limiter"
	"dive-media/utils/security"
)

type ApplicationComponents struct {
	ResponsiveImageUsecase *responsive_image_usecase.ResponsiveImageUsecase
	VerdictStore           *verdict_redis.RedisVerdictStore
}

// NewApplicationComponents wires drivers, gateways and the usecase from cfg.
// The Redis verdict store is only created when REDIS_URL is set.
func NewApplicationComponents(cfg *config.Config) (*ApplicationComponents, error) {
	defaultFormats, err := config.ParseFormats(cfg.Images.DefaultFormats)
	if err != nil {
		return nil, fmt.Errorf("parse default formats: %w", err)
	}

	storageClient := supabase_storage.NewClient(cfg.Storage.Origin, cfg.Storage.ServiceKey, cfg.Storage.Bucket)
	objectStorageGatewayImpl := original_store_gateway.NewObjectStorageGateway(storageClient)

	guard := security.NewOriginGuard(cfg.Origin.AllowPrivateNetwork)
	limiter := rate_limiter.NewHostRateLimiter(cfg.Origin.HostInterval, cfg.Origin.HostBurst)
	originFetchGatewayImpl := origin_fetch_gateway.NewOriginFetchGateway(guard, limiter, cfg.HTTP.ClientTimeout, cfg.Origin.MaxBytes)

	originalStoreGatewayImpl := original_store_gateway.NewOriginalStoreGateway(objectStorageGatewayImpl, originFetchGatewayImpl)

	var verdictStore *verdict_redis.RedisVerdictStore
	var verdictPort transform_port.VerdictStorePort
	if cfg.Redis.URL != "" {
		verdictStore, err = verdict_redis.NewRedisVerdictStoreWithURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("create redis verdict store: %w", err)
		}
		verdictPort = verdictStore
	}

	// Probe and placeholder requests go to the configured storage origin only.
	storageHTTPClient := &http.Client{Timeout: cfg.HTTP.ClientTimeout}
	transformProbeGatewayImpl := transform_probe_gateway.NewTransformProbeGateway(storageHTTPClient, cfg.Cache.VerdictSize, cfg.Cache.VerdictTTL, verdictPort)
	placeholderGatewayImpl := placeholder_gateway.NewPlaceholderGateway(storageHTTPClient)

	responsiveImageUsecase := responsive_image_usecase.NewResponsiveImageUsecase(
		originalStoreGatewayImpl,
		transformProbeGatewayImpl,
		placeholderGatewayImpl,
		responsive_image_usecase.Settings{
			StorageOrigin:   cfg.Storage.Origin,
			Bucket:          cfg.Storage.Bucket,
			Namespace:       cfg.Storage.Namespace,
			DefaultQuality:  cfg.Images.DefaultQuality,
			DefaultMaxWidth: cfg.Images.DefaultMaxWidth,
			DefaultFormats:  defaultFormats,
		},
		responsive_image_usecase.NewResultCache(cfg.Cache.ResultSize, cfg.Cache.ResultTTL),
	)

	return &ApplicationComponents{
		ResponsiveImageUsecase: responsiveImageUsecase,
		VerdictStore:           verdictStore,
	}, nil
}

// Close releases external connections.
func (c *ApplicationComponents) Close() error {
	if c.VerdictStore != nil {
		return c.VerdictStore.Close()
	}
	return nil
}
