package transform_port

//go:generate go run go.uber.org/mock/mockgen -source=transform_port.go -destination=../../mocks/mock_transform_port.go -package=mocks

import (
	"context"
	"time"
)

// TransformSupportPort answers whether the transform endpoint serves a URL.
// It never fails: probe errors count as unsupported.
type TransformSupportPort interface {
	EnsureTransformSupport(ctx context.Context, transformURL string) bool
}

// PlaceholderPort turns a tiny transform URL into an inline data URL.
type PlaceholderPort interface {
	BuildPlaceholder(ctx context.Context, placeholderURL string) (string, error)
}

// VerdictInvalidatorPort drops cached transform verdicts so the next lookup
// probes again.
type VerdictInvalidatorPort interface {
	InvalidateTransformSupport(ctx context.Context, transformURL string) error
}

// VerdictStorePort shares transform verdicts between instances.
type VerdictStorePort interface {
	GetVerdict(ctx context.Context, transformURL string) (supported bool, found bool, err error)
	SetVerdict(ctx context.Context, transformURL string, supported bool, ttl time.Duration) error
	DeleteVerdict(ctx context.Context, transformURL string) error
}
