package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dive-media/config"
	"dive-media/domain"
	"dive-media/port/responsive_image_port"
	"dive-media/utils/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const (
	maxBatchSize        = 50
	batchConcurrency    = 8
	maxBreakpointsCount = 16
)

type fieldError struct {
	field   string
	value   string
	message string
}

func (e *fieldError) Error() string {
	return e.message
}

// BatchItem is one entry of a batch response: exactly one of Result or Error is set.
type BatchItem struct {
	Result *domain.ResponsiveImageResult `json:"result,omitempty"`
	Error  *errors.HTTPContextResponse   `json:"error,omitempty"`
}

type BatchResponse struct {
	Items []BatchItem `json:"items"`
}

func registerImageRoutes(v1 *echo.Group, images responsive_image_port.ResponsiveImagePort, cache responsive_image_port.ResponsiveImageCachePort) {
	g := v1.Group("/images/responsive")
	g.GET("", handleGetResponsiveImage(images))
	g.DELETE("", handleForgetResponsiveImage(cache))
	g.POST("/batch", handleBatchResponsiveImages(images))
}

// handleForgetResponsiveImage clears the memoized result and transform
// verdict for the request named by the query, same parameters as GET.
func handleForgetResponsiveImage(cache responsive_image_port.ResponsiveImageCachePort) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, ferr := parseImageQuery(c)
		if ferr != nil {
			return handleValidationError(c, ferr.message, ferr.field, ferr.value)
		}

		if err := cache.Forget(c.Request().Context(), req); err != nil {
			return handleError(c, err, "ForgetResponsiveImage")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleGetResponsiveImage(images responsive_image_port.ResponsiveImagePort) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, ferr := parseImageQuery(c)
		if ferr != nil {
			return handleValidationError(c, ferr.message, ferr.field, ferr.value)
		}

		result, err := images.GetResponsiveImage(c.Request().Context(), req)
		if err != nil {
			return handleError(c, err, "GetResponsiveImage")
		}

		c.Response().Header().Set("Cache-Control", "public, max-age=300")
		return c.JSON(http.StatusOK, result)
	}
}

func handleBatchResponsiveImages(images responsive_image_port.ResponsiveImagePort) echo.HandlerFunc {
	return func(c echo.Context) error {
		var reqs []domain.ImageRequest
		if err := c.Bind(&reqs); err != nil {
			return handleValidationError(c, "request body must be a JSON array of image requests", "body", nil)
		}
		if len(reqs) == 0 {
			return handleValidationError(c, "batch must contain at least one request", "body", 0)
		}
		if len(reqs) > maxBatchSize {
			return handleValidationError(c, fmt.Sprintf("batch cannot exceed %d requests", maxBatchSize), "body", len(reqs))
		}

		ctx := c.Request().Context()
		items := make([]BatchItem, len(reqs))

		// Items fail independently, so the group never returns an error.
		var g errgroup.Group
		g.SetLimit(batchConcurrency)
		for i := range reqs {
			g.Go(func() error {
				req := &reqs[i]
				if ferr := validateImageRequest(req); ferr != nil {
					verr := errors.NewValidationContextError(ferr.message, "rest", "RESTHandler", "BatchResponsiveImages",
						map[string]interface{}{"field": ferr.field, "index": i})
					resp := verr.ToHTTPResponse()
					items[i] = BatchItem{Error: &resp}
					return nil
				}

				result, err := images.GetResponsiveImage(ctx, req)
				if err != nil {
					resp := toAppContextError(c, err, "BatchResponsiveImages").ToHTTPResponse()
					items[i] = BatchItem{Error: &resp}
					return nil
				}
				items[i] = BatchItem{Result: result}
				return nil
			})
		}
		_ = g.Wait()

		return c.JSON(http.StatusOK, BatchResponse{Items: items})
	}
}

// parseImageQuery reads src, w, h, key, ns, bp, fmt, q, max, placeholder and path.
func parseImageQuery(c echo.Context) (*domain.ImageRequest, *fieldError) {
	req := &domain.ImageRequest{
		SourceURL:  strings.TrimSpace(c.QueryParam("src")),
		CacheKey:   c.QueryParam("key"),
		Namespace:  c.QueryParam("ns"),
		TargetPath: c.QueryParam("path"),
	}

	var ferr *fieldError
	if req.Width, ferr = intParam(c, "w"); ferr != nil {
		return nil, ferr
	}
	if req.Height, ferr = intParam(c, "h"); ferr != nil {
		return nil, ferr
	}
	if req.Quality, ferr = intParam(c, "q"); ferr != nil {
		return nil, ferr
	}
	if req.MaxWidth, ferr = intParam(c, "max"); ferr != nil {
		return nil, ferr
	}

	if raw := c.QueryParam("bp"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			w, err := strconv.Atoi(part)
			if err != nil {
				return nil, &fieldError{field: "bp", value: raw, message: "breakpoints must be comma-separated integers"}
			}
			req.Breakpoints = append(req.Breakpoints, w)
		}
	}

	if raw := c.QueryParam("fmt"); raw != "" {
		formats, err := config.ParseFormats(raw)
		if err != nil {
			return nil, &fieldError{field: "fmt", value: raw, message: err.Error()}
		}
		req.Formats = formats
	}

	if raw := c.QueryParam("placeholder"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &fieldError{field: "placeholder", value: raw, message: "placeholder must be a boolean"}
		}
		req.Placeholder = b
	}

	if ferr := validateImageRequest(req); ferr != nil {
		return nil, ferr
	}
	return req, nil
}

func intParam(c echo.Context, name string) (int, *fieldError) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &fieldError{field: name, value: raw, message: name + " must be an integer"}
	}
	return v, nil
}

// validateImageRequest checks the fields shared by the query and batch forms
// and normalizes format names. Out-of-range quality is clamped downstream.
func validateImageRequest(req *domain.ImageRequest) *fieldError {
	switch {
	case req.SourceURL == "":
		return &fieldError{field: "src", message: "src is required"}
	case req.Width <= 0:
		return &fieldError{field: "w", value: strconv.Itoa(req.Width), message: "w must be a positive integer"}
	case req.Height < 0:
		return &fieldError{field: "h", value: strconv.Itoa(req.Height), message: "h cannot be negative"}
	case req.Quality < 0:
		return &fieldError{field: "q", value: strconv.Itoa(req.Quality), message: "q cannot be negative"}
	case req.MaxWidth < 0:
		return &fieldError{field: "max", value: strconv.Itoa(req.MaxWidth), message: "max cannot be negative"}
	case len(req.Breakpoints) > maxBreakpointsCount:
		return &fieldError{field: "bp", value: strconv.Itoa(len(req.Breakpoints)), message: fmt.Sprintf("at most %d breakpoints are allowed", maxBreakpointsCount)}
	}

	for i, f := range req.Formats {
		parsed, err := domain.ParseImageFormat(string(f))
		if err != nil {
			return &fieldError{field: "fmt", value: string(f), message: err.Error()}
		}
		req.Formats[i] = parsed
	}
	return nil
}
