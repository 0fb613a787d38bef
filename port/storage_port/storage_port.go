package storage_port

//go:generate go run go.uber.org/mock/mockgen -source=storage_port.go -destination=../../mocks/mock_storage_port.go -package=mocks

import (
	"context"

	"dive-media/domain"
)

// ObjectStoragePort is the bucket holding canonical originals.
type ObjectStoragePort interface {
	// Bucket returns the bucket every path is relative to.
	Bucket() string
	// ObjectExists lists the parent prefix and matches the object name.
	ObjectExists(ctx context.Context, objectPath string) (bool, error)
	// UploadObject stores data at objectPath. Conflicts surface as ErrObjectExists.
	UploadObject(ctx context.Context, objectPath string, data []byte, opts domain.UploadOptions) error
}
