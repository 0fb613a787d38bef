package rest

import (
	"context"
	stderrors "errors"

	"dive-media/utils/errors"
	"dive-media/utils/logger"

	"github.com/labstack/echo/v4"
)

// toAppContextError attributes err to the REST layer, keeping the code of a
// wrapped AppContextError so its HTTP status survives.
func toAppContextError(c echo.Context, err error, operation string) *errors.AppContextError {
	requestContext := map[string]interface{}{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get("X-Request-ID"),
	}

	var appErr *errors.AppContextError
	switch {
	case stderrors.As(err, &appErr):
		return errors.EnrichWithContext(appErr, "rest", "RESTHandler", operation, requestContext)
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		return errors.NewTimeoutContextError("request timed out", "rest", "RESTHandler", operation, err, requestContext)
	default:
		return errors.NewUnknownContextError("internal server error", "rest", "RESTHandler", operation, err, requestContext)
	}
}

// handleError converts errors to appropriate HTTP responses
func handleError(c echo.Context, err error, operation string) error {
	enrichedErr := toAppContextError(c, err, operation)

	logger.SafeErrorContext(c.Request().Context(), "REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"is_retryable", enrichedErr.IsRetryable(),
	)

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

// handleValidationError answers 400 for a bad field
func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	validationErr := errors.NewValidationContextError(
		message,
		"rest",
		"RESTHandler",
		"validateInput",
		map[string]interface{}{
			"field":      field,
			"value":      value,
			"path":       c.Request().URL.Path,
			"request_id": c.Response().Header().Get("X-Request-ID"),
		},
	)

	logger.SafeWarnContext(c.Request().Context(), "REST validation error",
		"field", field,
		"value", value,
		"path", c.Request().URL.Path,
	)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}
