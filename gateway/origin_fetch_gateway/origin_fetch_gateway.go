package origin_fetch_gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"dive-media/domain"
	"dive-media/utils/errors"
	"dive-media/utils/logger"
	"dive-media/utils/metrics"
	"dive-media/utils/rate_limiter"
	"dive-media/utils/security"
)

const userAgent = "dive-media/1.0 (+responsive-images)"

// OriginFetchGateway implements origin_port.OriginFetchPort.
// It acts as an Anti-Corruption Layer between the domain and arbitrary origins.
type OriginFetchGateway struct {
	httpClient *http.Client
	guard      *security.OriginGuard
	limiter    *rate_limiter.HostRateLimiter
	maxBytes   int64
}

// NewOriginFetchGateway creates the gateway. The HTTP client is built by the
// guard so every dial and redirect is re-validated.
func NewOriginFetchGateway(guard *security.OriginGuard, limiter *rate_limiter.HostRateLimiter, timeout time.Duration, maxBytes int64) *OriginFetchGateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = domain.OriginalMaxSize
	}
	return &OriginFetchGateway{
		httpClient: guard.NewHTTPClient(timeout),
		guard:      guard,
		limiter:    limiter,
		maxBytes:   maxBytes,
	}
}

// FetchOrigin downloads sourceURL into memory.
func (g *OriginFetchGateway) FetchOrigin(ctx context.Context, sourceURL string, ext string) (*domain.OriginImage, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	u, err := g.guard.ValidateURL(sourceURL)
	if err != nil {
		metrics.RecordOriginFetch("blocked", 0)
		return nil, errors.NewAppContextError(
			errors.CodeValidation,
			fmt.Sprintf("origin URL rejected: %v", err),
			"gateway",
			"OriginFetchGateway",
			"validate_url",
			fmt.Errorf("%w: %w", errors.ErrInvalidInput, err),
			map[string]interface{}{"url": sourceURL},
		)
	}

	if g.limiter != nil {
		if err := g.limiter.WaitForHost(ctx, u.String()); err != nil {
			return nil, errors.NewTimeoutContextError(
				"waiting for origin host slot",
				"gateway",
				"OriginFetchGateway",
				"rate_limit",
				err,
				map[string]interface{}{"url": sourceURL},
			)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.NewOriginFetchError("failed to create HTTP request", "gateway", "OriginFetchGateway", "create_request", err,
			map[string]interface{}{"url": sourceURL})
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/avif, image/webp, image/png, image/jpeg, image/*")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.RecordOriginFetch("error", 0)
		return nil, errors.NewOriginFetchError("HTTP request failed", "gateway", "OriginFetchGateway", "http_request", err,
			map[string]interface{}{"url": sourceURL})
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordOriginFetch("status_"+strconv.Itoa(resp.StatusCode), 0)
		return nil, errors.NewOriginFetchError(
			fmt.Sprintf("failed to fetch source image %s: %d %s", sourceURL, resp.StatusCode, http.StatusText(resp.StatusCode)),
			"gateway",
			"OriginFetchGateway",
			"http_response",
			fmt.Errorf("status code: %d", resp.StatusCode),
			map[string]interface{}{
				"url":         sourceURL,
				"status_code": resp.StatusCode,
			},
		)
	}

	if resp.ContentLength > g.maxBytes {
		metrics.RecordOriginFetch("too_large", 0)
		return nil, errors.NewOriginFetchError("source image too large", "gateway", "OriginFetchGateway", "validate_size",
			fmt.Errorf("content length %d exceeds %d", resp.ContentLength, g.maxBytes),
			map[string]interface{}{"url": sourceURL, "content_length": resp.ContentLength, "max_size": g.maxBytes})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBytes+1))
	if err != nil {
		metrics.RecordOriginFetch("error", 0)
		return nil, errors.NewOriginFetchError("failed to read response body", "gateway", "OriginFetchGateway", "read_response", err,
			map[string]interface{}{"url": sourceURL})
	}
	if int64(len(data)) > g.maxBytes {
		metrics.RecordOriginFetch("too_large", 0)
		return nil, errors.NewOriginFetchError("source image too large", "gateway", "OriginFetchGateway", "validate_size",
			fmt.Errorf("body exceeds %d bytes", g.maxBytes),
			map[string]interface{}{"url": sourceURL, "max_size": g.maxBytes})
	}

	contentType := resp.Header.Get("Content-Type")
	if !domain.IsImageContentType(contentType) {
		logger.SafeDebugContext(ctx, "origin sent non-image content type, inferring from extension",
			"url", sourceURL,
			"content_type", contentType,
			"ext", ext)
		contentType = domain.ContentTypeForExtension(ext)
	}

	metrics.RecordOriginFetch("ok", len(data))

	return &domain.OriginImage{
		URL:         sourceURL,
		ContentType: contentType,
		Data:        data,
		FetchedAt:   time.Now(),
	}, nil
}
