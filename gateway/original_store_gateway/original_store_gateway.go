package original_store_gateway

import (
	"context"
	"fmt"

	"dive-media/domain"
	"dive-media/port/origin_port"
	"dive-media/port/storage_port"
	"dive-media/utils/errors"
	"dive-media/utils/logger"
	"dive-media/utils/metrics"
)

// OriginalStoreGateway implements original_store_port.OriginalStorePort:
// check, fetch, upload. Nothing is retried.
type OriginalStoreGateway struct {
	storage storage_port.ObjectStoragePort
	origin  origin_port.OriginFetchPort
}

func NewOriginalStoreGateway(storage storage_port.ObjectStoragePort, origin origin_port.OriginFetchPort) *OriginalStoreGateway {
	return &OriginalStoreGateway{storage: storage, origin: origin}
}

// EnsureOriginalExists returns once bucket/objectPath holds a copy of sourceURL.
// A conflicting concurrent upload counts as success.
func (g *OriginalStoreGateway) EnsureOriginalExists(ctx context.Context, objectPath, sourceURL, ext string) (*domain.StoredOriginal, error) {
	bucket := g.storage.Bucket()

	exists, err := g.storage.ObjectExists(ctx, objectPath)
	if err != nil {
		return nil, g.storageError("check original", "exists", objectPath, err)
	}
	if exists {
		metrics.RecordUpload("exists")
		return &domain.StoredOriginal{
			Bucket:      bucket,
			Path:        objectPath,
			ContentType: domain.ContentTypeForExtension(ext),
		}, nil
	}

	img, err := g.origin.FetchOrigin(ctx, sourceURL, ext)
	if err != nil {
		return nil, fmt.Errorf("fetch source image: %w", err)
	}

	err = g.storage.UploadObject(ctx, objectPath, img.Data, domain.UploadOptions{
		Upsert:       false,
		ContentType:  img.ContentType,
		CacheControl: domain.OriginalCacheControl,
	})
	switch {
	case err == nil:
		metrics.RecordUpload("uploaded")
		logger.SafeInfoContext(ctx, "stored original image",
			"bucket", bucket,
			"path", objectPath,
			"bytes", len(img.Data),
			"content_type", img.ContentType)
		return &domain.StoredOriginal{Bucket: bucket, Path: objectPath, ContentType: img.ContentType, Uploaded: true}, nil
	case errors.IsObjectExists(err):
		metrics.RecordUpload("conflict")
		logger.SafeDebugContext(ctx, "original uploaded concurrently", "bucket", bucket, "path", objectPath)
		return &domain.StoredOriginal{Bucket: bucket, Path: objectPath, ContentType: img.ContentType}, nil
	default:
		metrics.RecordUpload("error")
		return nil, g.storageError("upload original", "upload", objectPath, err)
	}
}

func (g *OriginalStoreGateway) storageError(message, operation, objectPath string, err error) error {
	return errors.NewStorageContextError(
		message,
		"gateway",
		"OriginalStoreGateway",
		operation,
		err,
		map[string]interface{}{
			"bucket": g.storage.Bucket(),
			"path":   objectPath,
		},
	)
}
