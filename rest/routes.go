package rest

import (
	"strings"

	"dive-media/config"
	"dive-media/di"
	middleware_custom "dive-media/middleware"
	"dive-media/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const maxBatchBodySize = "256K"

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery
	e.Use(middleware.Recover())

	// 3. Tracing; the status middleware must run inside otelecho's span
	if cfg.OTel.Enabled {
		e.Use(otelecho.Middleware(cfg.OTel.ServiceName, otelecho.WithSkipper(func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		})))
		e.Use(middleware_custom.OTelStatusMiddleware())
	}

	// 4. Body limit for the batch endpoint
	e.Use(middleware.BodyLimit(maxBatchBodySize))

	// 5. Logging
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 6. Compression last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") || c.Path() == "/metrics"
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", handleHealth(cfg.Storage.Origin != ""))
	registerImageRoutes(v1, container.ResponsiveImageUsecase, container.ResponsiveImageUsecase)
}
