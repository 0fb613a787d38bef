package origin_port

//go:generate go run go.uber.org/mock/mockgen -source=origin_port.go -destination=../../mocks/mock_origin_port.go -package=mocks

import (
	"context"

	"dive-media/domain"
)

// OriginFetchPort downloads a source image. ext is used for the content type
// when the origin does not send an image/* one.
type OriginFetchPort interface {
	FetchOrigin(ctx context.Context, sourceURL string, ext string) (*domain.OriginImage, error)
}
