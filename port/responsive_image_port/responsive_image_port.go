package responsive_image_port

//go:generate go run go.uber.org/mock/mockgen -source=responsive_image_port.go -destination=../../mocks/mock_responsive_image_port.go -package=mocks

import (
	"context"

	"dive-media/domain"
)

// ResponsiveImagePort resolves an ImageRequest into a ResponsiveImageResult.
type ResponsiveImagePort interface {
	GetResponsiveImage(ctx context.Context, req *domain.ImageRequest) (*domain.ResponsiveImageResult, error)
}

// ResponsiveImageCachePort clears what was cached for an ImageRequest.
type ResponsiveImageCachePort interface {
	Forget(ctx context.Context, req *domain.ImageRequest) error
}
