package original_store_port

//go:generate go run go.uber.org/mock/mockgen -source=original_store_port.go -destination=../../mocks/mock_original_store_port.go -package=mocks

import (
	"context"

	"dive-media/domain"
)

// OriginalStorePort makes sure a canonical original exists in object storage.
type OriginalStorePort interface {
	EnsureOriginalExists(ctx context.Context, objectPath, sourceURL, ext string) (*domain.StoredOriginal, error)
}
