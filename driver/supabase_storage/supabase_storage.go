// Package supabase_storage wraps storage-go for the originals bucket.
package supabase_storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dive-media/domain"
	apperrors "dive-media/utils/errors"

	storage_go "github.com/supabase-community/storage-go"
)

const storageAPIPath = "/storage/v1"

// Client talks to the storage API of one project and one bucket.
type Client struct {
	apiURL     string
	serviceKey string
	bucket     string
	// list is shared; upload options mutate client headers, so uploads get
	// their own client.
	list *storage_go.Client
}

// NewClient builds a client for origin (the project URL without /storage/v1).
func NewClient(origin, serviceKey, bucket string) *Client {
	apiURL := strings.TrimRight(origin, "/") + storageAPIPath
	return &Client{
		apiURL:     apiURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		list:       storage_go.NewClient(apiURL, serviceKey, nil),
	}
}

func (c *Client) Bucket() string {
	return c.bucket
}

// ListNames returns one page of object names directly under prefix, sorted
// by name ascending.
func (c *Client) ListNames(ctx context.Context, prefix string, limit, offset int) ([]string, error) {
	opts := storage_go.FileSearchOptions{
		Limit:         limit,
		Offset:        offset,
		SortByOptions: storage_go.SortBy{Column: "name", Order: "asc"},
	}
	objects, err := callWithContext(ctx, func() ([]storage_go.FileObject, error) {
		return c.list.ListFiles(c.bucket, prefix, opts)
	})
	if err != nil {
		return nil, classify(err)
	}

	names := make([]string, 0, len(objects))
	for _, o := range objects {
		names = append(names, o.Name)
	}
	return names, nil
}

// Upload stores data at objectPath.
func (c *Client) Upload(ctx context.Context, objectPath string, data []byte, opts domain.UploadOptions) error {
	client := storage_go.NewClient(c.apiURL, c.serviceKey, nil)

	upsert := opts.Upsert
	fileOpts := storage_go.FileOptions{Upsert: &upsert}
	if opts.ContentType != "" {
		contentType := opts.ContentType
		fileOpts.ContentType = &contentType
	}
	if opts.CacheControl != "" {
		cacheControl := opts.CacheControl
		fileOpts.CacheControl = &cacheControl
	}

	_, err := callWithContext(ctx, func() (storage_go.FileUploadResponse, error) {
		return client.UploadFile(c.bucket, objectPath, bytes.NewReader(data), fileOpts)
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// IsConflict reports an upload refused because the object already exists.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	var se *storage_go.StorageError
	if errors.As(err, &se) {
		if se.Status == http.StatusConflict {
			return true
		}
		return containsAny(se.Message, "already exists", "duplicate")
	}
	return false
}

// IsBucketNotFound reports a request against a missing bucket. The typed
// status is checked first; the API often omits it, so the message is the fallback.
func IsBucketNotFound(err error) bool {
	if err == nil {
		return false
	}
	var se *storage_go.StorageError
	if errors.As(err, &se) {
		if se.Status == http.StatusNotFound && containsAny(se.Message, "bucket") {
			return true
		}
		return containsAny(se.Message, "bucket not found")
	}
	return false
}

// classify attaches the sentinel that upper layers branch on.
func classify(err error) error {
	switch {
	case IsBucketNotFound(err):
		return fmt.Errorf("%w: %w", apperrors.ErrBucketNotFound, err)
	case IsConflict(err):
		return fmt.Errorf("%w: %w", apperrors.ErrObjectExists, err)
	default:
		return err
	}
}

func containsAny(s string, needles ...string) bool {
	s = strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// callWithContext lets callers stop waiting on storage-go, which has no
// context support. The request itself runs to completion.
func callWithContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
