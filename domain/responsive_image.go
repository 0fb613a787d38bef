package domain

import "time"

// ImageRequest describes one responsive image lookup.
type ImageRequest struct {
	SourceURL   string        `json:"src"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	CacheKey    string        `json:"cacheKey,omitempty"`
	Namespace   string        `json:"namespace,omitempty"`
	Breakpoints []int         `json:"breakpoints,omitempty"`
	Formats     []ImageFormat `json:"formats,omitempty"`
	Quality     int           `json:"quality,omitempty"`
	MaxWidth    int           `json:"maxWidth,omitempty"`
	Placeholder bool          `json:"placeholder,omitempty"`
	TargetPath  string        `json:"targetPath,omitempty"`
}

// StoredOriginal is the canonical copy of a source image in object storage.
type StoredOriginal struct {
	Bucket      string
	Path        string
	ContentType string
	// Uploaded is false when the object already existed (or a concurrent
	// writer won the race).
	Uploaded bool
}

// ImageSource is one <source> entry: a MIME type and its srcset.
type ImageSource struct {
	Type   string `json:"type"`
	SrcSet string `json:"srcset"`
}

// ResponsiveImageResult is what page renderers consume.
type ResponsiveImageResult struct {
	Bucket      string        `json:"bucket"`
	Path        string        `json:"path"`
	Original    string        `json:"original"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	AspectRatio float64       `json:"aspectRatio"`
	DefaultSrc  string        `json:"defaultSrc"`
	Sources     []ImageSource `json:"sources"`
	Placeholder string        `json:"placeholder,omitempty"`
	Sizes       string        `json:"sizes"`
}

// OriginImage is a fetched source image held in memory.
type OriginImage struct {
	URL         string
	ContentType string
	Data        []byte
	FetchedAt   time.Time
}

// UploadOptions mirrors the object store's upload flags.
type UploadOptions struct {
	Upsert       bool
	ContentType  string
	CacheControl string
}

const (
	// DefaultNamespace prefixes content-addressed storage paths.
	DefaultNamespace = "responsive"

	// DefaultImageQuality is used when a request does not set one.
	DefaultImageQuality = 75

	// MinImageQuality and MaxImageQuality bound transform quality.
	MinImageQuality = 10
	MaxImageQuality = 100

	// DefaultMaxWidth caps breakpoints when a request does not set MaxWidth.
	DefaultMaxWidth = 1920

	// PlaceholderWidth and PlaceholderQuality describe the inline preview.
	PlaceholderWidth   = 24
	PlaceholderQuality = 40

	// OriginalCacheControl is one year, in seconds.
	OriginalCacheControl = "31536000"

	// OriginalMaxSize bounds the in-memory copy of a source image (15MB).
	OriginalMaxSize = 15 * 1024 * 1024

	// TransformResize is the resize mode sent to the transform service.
	TransformResize = "cover"
)

// DefaultFormats is the format list used when a request does not set one.
// avif comes first so capable clients pick it from <source>.
func DefaultFormats() []ImageFormat {
	return []ImageFormat{FormatAVIF, FormatWebP}
}
