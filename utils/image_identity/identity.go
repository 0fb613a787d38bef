// Package image_identity derives the stable storage identity of a source image.
package image_identity

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path"
	"strings"
)

const defaultExtension = "jpg"

var knownExtensions = map[string]string{
	"jpg":  "jpg",
	"jpeg": "jpg",
	"png":  "png",
	"webp": "webp",
	"avif": "avif",
}

// Hash returns the SHA-256 hex digest used as the content-addressed folder name.
func Hash(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// IsAbsoluteURL reports whether raw has both a scheme and a host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// InferExtension reads the trailing ".ext" token of the URL path.
// Query and fragment are ignored; unknown or missing extensions yield "jpg".
func InferExtension(sourceURL string) string {
	p := sourceURL
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if known, ok := knownExtensions[ext]; ok {
		return known
	}
	return defaultExtension
}

// StoragePath returns the object key for a stored original. An explicit
// targetPath wins; otherwise the key is "<namespace>/<hash>/original.<ext>".
func StoragePath(namespace, hash, ext, targetPath string) string {
	if targetPath != "" {
		return NormalizeTargetPath(targetPath, ext)
	}
	return namespace + "/" + hash + "/original." + ext
}

// NormalizeTargetPath strips surrounding slashes and appends
// "/original.<ext>" when the last segment carries no extension.
func NormalizeTargetPath(targetPath, ext string) string {
	p := strings.Trim(targetPath, "/")
	if path.Ext(path.Base(p)) == "" {
		if p == "" {
			return "original." + ext
		}
		p += "/original." + ext
	}
	return p
}
