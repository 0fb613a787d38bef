package original_store_gateway

import (
	"context"
	"path"
	"slices"
	"strings"

	"dive-media/domain"
	"dive-media/driver/supabase_storage"
)

const (
	// existencePageSize is the page size used when listing a folder.
	existencePageSize = 100
	// maxExistencePages caps the listing of very large folders.
	maxExistencePages = 1000
)

// ObjectStorageGateway implements storage_port.ObjectStoragePort on top of
// the storage-go driver.
type ObjectStorageGateway struct {
	client *supabase_storage.Client
}

func NewObjectStorageGateway(client *supabase_storage.Client) *ObjectStorageGateway {
	return &ObjectStorageGateway{client: client}
}

func (g *ObjectStorageGateway) Bucket() string {
	return g.client.Bucket()
}

// ObjectExists pages through the parent prefix looking for the object name
// until a short page marks the end of the folder.
func (g *ObjectStorageGateway) ObjectExists(ctx context.Context, objectPath string) (bool, error) {
	dir, name := path.Split(objectPath)
	prefix := strings.TrimSuffix(dir, "/")

	for page := 0; page < maxExistencePages; page++ {
		names, err := g.client.ListNames(ctx, prefix, existencePageSize, page*existencePageSize)
		if err != nil {
			return false, err
		}
		if slices.Contains(names, name) {
			return true, nil
		}
		if len(names) < existencePageSize {
			return false, nil
		}
	}
	return false, nil
}

func (g *ObjectStorageGateway) UploadObject(ctx context.Context, objectPath string, data []byte, opts domain.UploadOptions) error {
	return g.client.Upload(ctx, objectPath, data, opts)
}
