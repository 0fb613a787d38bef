package responsive_image_usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"dive-media/domain"
	"dive-media/port/original_store_port"
	"dive-media/port/transform_port"
	"dive-media/utils/errors"
	"dive-media/utils/image_identity"
	"dive-media/utils/logger"
	"dive-media/utils/metrics"
	otelutil "dive-media/utils/otel"
	"dive-media/utils/transform_url"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	outcomeSuccess       = "success"
	outcomePassthrough   = "passthrough"
	outcomeBucketMissing = "bucket_missing"
	outcomeDegraded      = "transform_unavailable"
	outcomeError         = "error"
)

// Settings are the service-wide defaults applied to every request.
type Settings struct {
	StorageOrigin   string
	Bucket          string
	Namespace       string
	DefaultQuality  int
	DefaultMaxWidth int
	DefaultFormats  []domain.ImageFormat
}

// ResultCache memoizes resolved results by request hash.
type ResultCache = expirable.LRU[string, *domain.ResponsiveImageResult]

// NewResultCache returns a bounded memo. ttl<=0 disables expiry.
func NewResultCache(size int, ttl time.Duration) *ResultCache {
	if ttl < 0 {
		ttl = 0
	}
	return expirable.NewLRU[string, *domain.ResponsiveImageResult](size, nil, ttl)
}

// ResponsiveImageUsecase orchestrates identity, storage, transform URLs,
// probing and placeholders into one ResponsiveImageResult.
type ResponsiveImageUsecase struct {
	originals    original_store_port.OriginalStorePort
	transforms   transform_port.TransformSupportPort
	placeholders transform_port.PlaceholderPort
	settings     Settings
	results      *ResultCache
	flights      singleflight.Group
	tracer       trace.Tracer
}

// NewResponsiveImageUsecase creates the orchestrator. A nil results cache
// gets an unbounded, non-expiring one.
func NewResponsiveImageUsecase(
	originals original_store_port.OriginalStorePort,
	transforms transform_port.TransformSupportPort,
	placeholders transform_port.PlaceholderPort,
	settings Settings,
	results *ResultCache,
) *ResponsiveImageUsecase {
	if settings.Namespace == "" {
		settings.Namespace = domain.DefaultNamespace
	}
	if settings.DefaultQuality == 0 {
		settings.DefaultQuality = domain.DefaultImageQuality
	}
	if settings.DefaultMaxWidth == 0 {
		settings.DefaultMaxWidth = domain.DefaultMaxWidth
	}
	if len(settings.DefaultFormats) == 0 {
		settings.DefaultFormats = domain.DefaultFormats()
	}
	if results == nil {
		results = NewResultCache(0, 0)
	}
	return &ResponsiveImageUsecase{
		originals:    originals,
		transforms:   transforms,
		placeholders: placeholders,
		settings:     settings,
		results:      results,
		tracer:       otelutil.Tracer(),
	}
}

// GetResponsiveImage resolves req, coalescing concurrent identical requests
// into one pipeline run. The run is detached from ctx: a caller that gives up
// returns ctx.Err() while the run completes and is memoized for the next one.
// Failed runs are not memoized.
func (u *ResponsiveImageUsecase) GetResponsiveImage(ctx context.Context, req *domain.ImageRequest) (*domain.ResponsiveImageResult, error) {
	if err := u.validate(req, "GetResponsiveImage"); err != nil {
		return nil, err
	}

	key := RequestHash(req)
	if cached, ok := u.results.Get(key); ok {
		metrics.RecordMemo("hit")
		return cloneResult(cached), nil
	}

	// Snapshot the request so the detached run never sees caller mutations.
	snapshot := cloneRequest(req)
	runCtx := context.WithoutCancel(ctx)

	ch := u.flights.DoChan(key, func() (interface{}, error) {
		if cached, ok := u.results.Get(key); ok {
			return cached, nil
		}
		res, err := u.run(runCtx, snapshot)
		if err != nil {
			return nil, err
		}
		u.results.Add(key, res)
		return res, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		if r.Shared {
			metrics.RecordMemo("shared")
		} else {
			metrics.RecordMemo("miss")
		}
		return cloneResult(r.Val.(*domain.ResponsiveImageResult)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Forget drops the memoized result for req and the cached transform verdict
// of its default transform URL, so the next request runs the pipeline again.
func (u *ResponsiveImageUsecase) Forget(ctx context.Context, req *domain.ImageRequest) error {
	if err := u.validate(req, "Forget"); err != nil {
		return err
	}

	u.results.Remove(RequestHash(req))

	if !image_identity.IsAbsoluteURL(req.SourceURL) {
		return nil
	}
	invalidator, ok := u.transforms.(transform_port.VerdictInvalidatorPort)
	if !ok {
		return nil
	}

	objectPath, _ := u.objectPath(req)
	maxWidth := u.maxWidth(req)
	breakpoints := transform_url.Breakpoints(req.Breakpoints, req.Width, maxWidth)
	renderBase := transform_url.RenderBase(u.settings.StorageOrigin, u.settings.Bucket, objectPath)
	defaultSrc := u.defaultSrc(renderBase, req, breakpoints, maxWidth)

	if err := invalidator.InvalidateTransformSupport(ctx, defaultSrc); err != nil {
		return errors.NewStorageContextError("failed to invalidate transform verdict", "usecase", "ResponsiveImageUsecase", "Forget", err,
			map[string]interface{}{"transform_url": defaultSrc})
	}
	logger.SafeInfoContext(ctx, "responsive image forgotten",
		"source_url", req.SourceURL,
		"transform_url", defaultSrc)
	return nil
}

func (u *ResponsiveImageUsecase) memoSize() int {
	return u.results.Len()
}

func (u *ResponsiveImageUsecase) validate(req *domain.ImageRequest, operation string) error {
	if strings.TrimSpace(u.settings.StorageOrigin) == "" {
		return errors.NewStorageOriginMissingError("usecase", "ResponsiveImageUsecase", operation)
	}
	if req == nil || strings.TrimSpace(req.SourceURL) == "" {
		return errors.NewValidationContextError("source URL is required", "usecase", "ResponsiveImageUsecase", operation, nil)
	}
	if req.Width <= 0 {
		return errors.NewValidationContextError("width must be positive", "usecase", "ResponsiveImageUsecase", operation,
			map[string]interface{}{"width": req.Width})
	}
	return nil
}

func (u *ResponsiveImageUsecase) run(ctx context.Context, req *domain.ImageRequest) (*domain.ResponsiveImageResult, error) {
	ctx, span := u.tracer.Start(ctx, "ResponsiveImageUsecase.run",
		trace.WithAttributes(
			attribute.String("image.source_url", req.SourceURL),
			attribute.Int("image.width", req.Width),
			attribute.Int("image.height", req.Height),
		))
	defer span.End()

	start := time.Now()
	res, outcome, err := u.pipeline(ctx, req)
	metrics.RecordPipeline(outcome, time.Since(start).Seconds())
	span.SetAttributes(attribute.String("image.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.RecordError("get_responsive_image", outcome)
		logger.SafeErrorContext(ctx, "responsive image pipeline failed",
			"source_url", req.SourceURL,
			"error", err)
		return nil, err
	}
	return res, nil
}

func (u *ResponsiveImageUsecase) pipeline(ctx context.Context, req *domain.ImageRequest) (*domain.ResponsiveImageResult, string, error) {
	maxWidth := u.maxWidth(req)
	breakpoints := transform_url.Breakpoints(req.Breakpoints, req.Width, maxWidth)

	if !image_identity.IsAbsoluteURL(req.SourceURL) {
		return u.passthrough(req, breakpoints), outcomePassthrough, nil
	}

	objectPath, ext := u.objectPath(req)

	stored, err := u.originals.EnsureOriginalExists(ctx, objectPath, req.SourceURL, ext)
	if err != nil {
		if errors.IsBucketNotFound(err) {
			logger.SafeWarnContext(ctx, "storage bucket not found, serving source image directly",
				"bucket", u.settings.Bucket,
				"source_url", req.SourceURL)
			return u.passthrough(req, breakpoints), outcomeBucketMissing, nil
		}
		return nil, outcomeError, err
	}

	formats := u.formats(req)
	quality := u.quality(req)

	renderBase := transform_url.RenderBase(u.settings.StorageOrigin, stored.Bucket, stored.Path)
	objectURL := transform_url.ObjectURL(u.settings.StorageOrigin, stored.Bucket, stored.Path)
	defaultSrc := u.defaultSrc(renderBase, req, breakpoints, maxWidth)

	result := &domain.ResponsiveImageResult{
		Bucket:      stored.Bucket,
		Path:        stored.Path,
		Original:    objectURL,
		Width:       req.Width,
		Height:      req.Height,
		AspectRatio: transform_url.AspectRatio(req.Width, req.Height),
		DefaultSrc:  defaultSrc,
		Sources:     []domain.ImageSource{},
		Sizes:       transform_url.Sizes(req.Width, breakpoints),
	}

	if !u.transforms.EnsureTransformSupport(ctx, defaultSrc) {
		logger.SafeWarnContext(ctx, "image transform not available, serving original object",
			"path", stored.Path,
			"transform_url", defaultSrc)
		result.DefaultSrc = objectURL
		return result, outcomeDegraded, nil
	}

	for _, f := range formats {
		result.Sources = append(result.Sources, domain.ImageSource{
			Type:   f.MIMEType(),
			SrcSet: transform_url.SrcSet(renderBase, f, breakpoints, quality),
		})
	}

	if req.Placeholder && u.placeholders != nil {
		placeholderURL := transform_url.TransformURL(renderBase, domain.FormatWebP, domain.PlaceholderWidth, domain.PlaceholderQuality)
		dataURL, err := u.placeholders.BuildPlaceholder(ctx, placeholderURL)
		if err != nil {
			metrics.RecordPlaceholder("error")
			logger.SafeWarnContext(ctx, "failed to build image placeholder",
				"url", placeholderURL,
				"error", err)
		} else {
			metrics.RecordPlaceholder("ok")
			result.Placeholder = dataURL
		}
	}

	return result, outcomeSuccess, nil
}

func (u *ResponsiveImageUsecase) maxWidth(req *domain.ImageRequest) int {
	if req.MaxWidth > 0 {
		return req.MaxWidth
	}
	return u.settings.DefaultMaxWidth
}

func (u *ResponsiveImageUsecase) formats(req *domain.ImageRequest) []domain.ImageFormat {
	if len(req.Formats) > 0 {
		return req.Formats
	}
	return u.settings.DefaultFormats
}

func (u *ResponsiveImageUsecase) quality(req *domain.ImageRequest) int {
	quality := req.Quality
	if quality == 0 {
		quality = u.settings.DefaultQuality
	}
	return transform_url.ClampQuality(quality)
}

// objectPath is the storage path of the original for req and its extension.
func (u *ResponsiveImageUsecase) objectPath(req *domain.ImageRequest) (string, string) {
	ext := image_identity.InferExtension(req.SourceURL)
	identity := req.CacheKey
	if identity == "" {
		identity = req.SourceURL
	}
	namespace := req.Namespace
	if namespace == "" {
		namespace = u.settings.Namespace
	}
	return image_identity.StoragePath(namespace, image_identity.Hash(identity), ext, req.TargetPath), ext
}

// defaultSrc is the transform URL probed for availability.
func (u *ResponsiveImageUsecase) defaultSrc(renderBase string, req *domain.ImageRequest, breakpoints []int, maxWidth int) string {
	defaultWidth := transform_url.DefaultWidth(breakpoints, req.Width, maxWidth)
	return transform_url.TransformURL(renderBase, transform_url.DefaultFormat(u.formats(req)), defaultWidth, u.quality(req))
}

// passthrough serves the source URL as-is, with no stored original.
func (u *ResponsiveImageUsecase) passthrough(req *domain.ImageRequest, breakpoints []int) *domain.ResponsiveImageResult {
	return &domain.ResponsiveImageResult{
		Bucket:      u.settings.Bucket,
		Original:    req.SourceURL,
		Width:       req.Width,
		Height:      req.Height,
		AspectRatio: transform_url.AspectRatio(req.Width, req.Height),
		DefaultSrc:  req.SourceURL,
		Sources:     []domain.ImageSource{},
		Sizes:       transform_url.Sizes(req.Width, breakpoints),
	}
}

func cloneRequest(req *domain.ImageRequest) *domain.ImageRequest {
	c := *req
	c.Breakpoints = slices.Clone(req.Breakpoints)
	c.Formats = slices.Clone(req.Formats)
	return &c
}

func cloneResult(res *domain.ResponsiveImageResult) *domain.ResponsiveImageResult {
	c := *res
	c.Sources = slices.Clone(res.Sources)
	if c.Sources == nil {
		c.Sources = []domain.ImageSource{}
	}
	return &c
}
