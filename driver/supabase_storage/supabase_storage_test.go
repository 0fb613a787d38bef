package supabase_storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dive-media/domain"
	apperrors "dive-media/utils/errors"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListNames(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/list/site-images", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"original.png"},{"name":"other.jpg"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "service-key", "site-images")
	names, err := c.ListNames(context.Background(), "responsive/abc", 100, 200)

	require.NoError(t, err)
	assert.Equal(t, []string{"original.png", "other.jpg"}, names)
	assert.Equal(t, "responsive/abc", gotBody["prefix"])
	assert.EqualValues(t, 100, gotBody["limit"])
	assert.EqualValues(t, 200, gotBody["offset"])
	assert.Equal(t, map[string]any{"column": "name", "order": "asc"}, gotBody["sortBy"])
	assert.Equal(t, "site-images", c.Bucket())
}

func TestClient_Upload(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/site-images/responsive/abc/original.png", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, "31536000", r.Header.Get("Cache-Control"))
		assert.Equal(t, "false", r.Header.Get("X-Upsert"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("png-bytes"), body)
		_, _ = w.Write([]byte(`{"Key":"site-images/responsive/abc/original.png"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", "site-images")
	err := c.Upload(context.Background(), "responsive/abc/original.png", []byte("png-bytes"), domain.UploadOptions{
		ContentType:  "image/png",
		CacheControl: domain.OriginalCacheControl,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_UploadConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k", "b").Upload(context.Background(), "p/original.jpg", []byte("x"), domain.UploadOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrObjectExists))
	assert.True(t, IsConflict(err))
}

func TestClient_BucketNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"Bucket not found","message":"Bucket not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", "missing").ListNames(context.Background(), "responsive", 100, 0)

	require.Error(t, err)
	assert.True(t, apperrors.IsBucketNotFound(err))
	assert.False(t, apperrors.IsObjectExists(err))
}

func TestClient_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL, "k", "b").ListNames(ctx, "responsive", 100, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantConflict bool
		wantNotFound bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("bucket not found")},
		{name: "typed conflict", err: &storage_go.StorageError{Status: http.StatusConflict}, wantConflict: true},
		{name: "message conflict", err: &storage_go.StorageError{Message: "The resource already exists"}, wantConflict: true},
		{name: "duplicate", err: &storage_go.StorageError{Message: "Duplicate key"}, wantConflict: true},
		{name: "typed bucket not found", err: &storage_go.StorageError{Status: http.StatusNotFound, Message: "Bucket missing"}, wantNotFound: true},
		{name: "message bucket not found", err: &storage_go.StorageError{Message: "Bucket not found"}, wantNotFound: true},
		{name: "object not found", err: &storage_go.StorageError{Status: http.StatusNotFound, Message: "Object not found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantConflict, IsConflict(tt.err))
			assert.Equal(t, tt.wantNotFound, IsBucketNotFound(tt.err))
		})
	}
}
