package transform_probe_gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dive-media/port/transform_port"
	"dive-media/utils/logger"
	"dive-media/utils/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// TransformProbeGateway implements transform_port.TransformSupportPort and
// transform_port.VerdictInvalidatorPort.
// Verdicts are cached per exact URL in memory and, when configured, in a
// shared store.
type TransformProbeGateway struct {
	httpClient *http.Client
	verdicts   *expirable.LRU[string, bool]
	store      transform_port.VerdictStorePort
	storeTTL   time.Duration
	probes     singleflight.Group
}

// NewTransformProbeGateway builds the prober. store may be nil. ttl<=0 keeps
// verdicts until evicted by size.
func NewTransformProbeGateway(httpClient *http.Client, cacheSize int, ttl time.Duration, store transform_port.VerdictStorePort) *TransformProbeGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if ttl < 0 {
		ttl = 0
	}
	return &TransformProbeGateway{
		httpClient: httpClient,
		verdicts:   expirable.NewLRU[string, bool](cacheSize, nil, ttl),
		store:      store,
		storeTTL:   ttl,
	}
}

// EnsureTransformSupport reports whether transformURL is served. It never
// returns an error; failures are logged and count as unsupported.
func (g *TransformProbeGateway) EnsureTransformSupport(ctx context.Context, transformURL string) bool {
	if ok, hit := g.verdicts.Get(transformURL); hit {
		metrics.RecordVerdict("memory", ok)
		return ok
	}

	v, _, _ := g.probes.Do(transformURL, func() (interface{}, error) {
		if g.store != nil {
			ok, found, err := g.store.GetVerdict(ctx, transformURL)
			if err != nil {
				logger.SafeWarnContext(ctx, "verdict store lookup failed", "url", transformURL, "error", err)
			} else if found {
				g.verdicts.Add(transformURL, ok)
				metrics.RecordVerdict("redis", ok)
				return ok, nil
			}
		}

		ok := g.probe(ctx, transformURL)
		metrics.RecordVerdict("probe", ok)

		// A verdict reached because the caller went away says nothing about the URL.
		if ctx.Err() != nil {
			return ok, nil
		}

		g.verdicts.Add(transformURL, ok)
		if g.store != nil {
			if err := g.store.SetVerdict(ctx, transformURL, ok, g.storeTTL); err != nil {
				logger.SafeWarnContext(ctx, "verdict store write failed", "url", transformURL, "error", err)
			}
		}
		return ok, nil
	})
	return v.(bool)
}

// InvalidateTransformSupport drops the verdict for transformURL from both
// tiers. The in-memory entry is always removed.
func (g *TransformProbeGateway) InvalidateTransformSupport(ctx context.Context, transformURL string) error {
	g.verdicts.Remove(transformURL)
	if g.store == nil {
		return nil
	}
	if err := g.store.DeleteVerdict(ctx, transformURL); err != nil {
		return fmt.Errorf("delete shared verdict: %w", err)
	}
	return nil
}

// probe tries HEAD first; any failure (transport error or non-2xx) falls
// back to a one-byte ranged GET, since some CDNs reject HEAD.
func (g *TransformProbeGateway) probe(ctx context.Context, transformURL string) bool {
	status, err := g.do(ctx, http.MethodHead, transformURL, nil)
	if err == nil && status >= 200 && status < 300 {
		return true
	}
	logger.SafeWarnContext(ctx, "transform HEAD probe failed, retrying with ranged GET",
		"url", transformURL,
		"status", status,
		"error", err)

	status, err = g.do(ctx, http.MethodGet, transformURL, map[string]string{"Range": "bytes=0-0"})
	if err == nil && status >= 200 && status < 300 {
		return true
	}
	logger.SafeWarnContext(ctx, "image transform unavailable",
		"url", transformURL,
		"status", status,
		"error", err)
	return false
}

func (g *TransformProbeGateway) do(ctx context.Context, method, target string, headers map[string]string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		_ = resp.Body.Close()
	}()
	return resp.StatusCode, nil
}
