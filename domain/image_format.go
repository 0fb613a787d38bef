package domain

import (
	"fmt"
	"strings"
)

// ImageFormat is an output format understood by the transform service.
type ImageFormat string

const (
	FormatAVIF ImageFormat = "avif"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
	FormatJPG  ImageFormat = "jpg"
)

var formatMIMETypes = map[ImageFormat]string{
	FormatAVIF: "image/avif",
	FormatWebP: "image/webp",
	FormatPNG:  "image/png",
	FormatJPG:  "image/jpeg",
}

// MIMEType returns the content type for the format, or "" if unknown.
func (f ImageFormat) MIMEType() string {
	return formatMIMETypes[f]
}

// ParseImageFormat accepts the names used in query strings and file
// extensions. "jpeg" is folded into "jpg".
func ParseImageFormat(s string) (ImageFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "jpeg" {
		name = string(FormatJPG)
	}
	f := ImageFormat(name)
	if _, ok := formatMIMETypes[f]; !ok {
		return "", fmt.Errorf("unsupported image format: %q", s)
	}
	return f, nil
}

// ContentTypeForExtension maps a stored original's extension to a MIME type.
// Unknown extensions are treated as JPEG.
func ContentTypeForExtension(ext string) string {
	f, err := ParseImageFormat(ext)
	if err != nil {
		return formatMIMETypes[FormatJPG]
	}
	return f.MIMEType()
}

// IsImageContentType reports whether a Content-Type header names an image.
func IsImageContentType(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(contentType, "image/")
}
