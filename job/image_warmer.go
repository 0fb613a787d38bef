package job

import (
	"context"

	"dive-media/domain"
	"dive-media/port/responsive_image_port"
	"dive-media/utils/logger"
)

// ImageWarmerJob resolves each target so page renders find a stored original
// and a memoized result. Failures are logged per target and never abort the run.
func ImageWarmerJob(images responsive_image_port.ResponsiveImagePort, targets []domain.ImageRequest) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if len(targets) == 0 {
			logger.SafeInfoContext(ctx, "image warmer: no targets configured")
			return nil
		}

		warmed, failed := 0, 0
		for i := range targets {
			if ctx.Err() != nil {
				logger.SafeInfoContext(ctx, "image warmer: context cancelled, stopping early", "warmed", warmed)
				return nil
			}

			req := targets[i]
			if _, err := images.GetResponsiveImage(ctx, &req); err != nil {
				failed++
				logger.SafeWarnContext(ctx, "image warmer: target failed",
					"source_url", req.SourceURL,
					"error", err)
				continue
			}
			warmed++
		}

		logger.SafeInfoContext(ctx, "image warmer: completed", "warmed", warmed, "failed", failed, "total", len(targets))
		return nil
	}
}
