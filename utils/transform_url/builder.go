// Package transform_url builds object-store and transform-service URLs for
// stored originals. Everything here is pure: no network access.
package transform_url

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"dive-media/domain"
)

const (
	renderPrefix = "/storage/v1/render/image/public/"
	objectPrefix = "/storage/v1/object/public/"
)

// RenderBase returns the transform-capable URL for bucket/path.
func RenderBase(origin, bucket, objectPath string) string {
	return strings.TrimRight(origin, "/") + renderPrefix + url.PathEscape(bucket) + "/" + EscapePath(objectPath)
}

// ObjectURL returns the untransformed public URL for bucket/path.
func ObjectURL(origin, bucket, objectPath string) string {
	return strings.TrimRight(origin, "/") + objectPrefix + url.PathEscape(bucket) + "/" + EscapePath(objectPath)
}

// EscapePath percent-encodes each path segment, keeping the separators.
func EscapePath(objectPath string) string {
	segments := strings.Split(strings.Trim(objectPath, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// TransformURL appends format/width/quality/resize to a render base.
// Parameter order is fixed so identical inputs give identical strings.
func TransformURL(renderBase string, format domain.ImageFormat, width, quality int) string {
	var b strings.Builder
	b.Grow(len(renderBase) + 48)
	b.WriteString(renderBase)
	b.WriteString("?format=")
	b.WriteString(url.QueryEscape(string(format)))
	b.WriteString("&width=")
	b.WriteString(strconv.Itoa(width))
	b.WriteString("&quality=")
	b.WriteString(strconv.Itoa(quality))
	b.WriteString("&resize=")
	b.WriteString(domain.TransformResize)
	return b.String()
}

// SrcSet renders one "<url> <w>w" entry per breakpoint, joined by ", ".
func SrcSet(renderBase string, format domain.ImageFormat, breakpoints []int, quality int) string {
	entries := make([]string, 0, len(breakpoints))
	for _, w := range breakpoints {
		entries = append(entries, fmt.Sprintf("%s %dw", TransformURL(renderBase, format, w, quality), w))
	}
	return strings.Join(entries, ", ")
}

// Breakpoints merges the requested breakpoints with the display width and
// keeps values in (0, max(maxWidth, width)], sorted and deduplicated.
func Breakpoints(requested []int, width, maxWidth int) []int {
	limit := max(maxWidth, width)

	set := make([]int, 0, len(requested)+1)
	for _, w := range append(slices.Clone(requested), width) {
		if w > 0 && w <= limit {
			set = append(set, w)
		}
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// DefaultWidth picks the width for the <img src> fallback: the smallest
// breakpoint at least as wide as the display width, else the largest one,
// clamped to maxWidth.
func DefaultWidth(breakpoints []int, width, maxWidth int) int {
	chosen := width
	if len(breakpoints) > 0 {
		chosen = breakpoints[len(breakpoints)-1]
		for _, w := range breakpoints {
			if w >= width {
				chosen = w
				break
			}
		}
	}
	if maxWidth > 0 && chosen > maxWidth {
		chosen = maxWidth
	}
	return chosen
}

// ClampQuality maps 0 to the default and bounds the rest to [10, 100].
func ClampQuality(quality int) int {
	if quality == 0 {
		quality = domain.DefaultImageQuality
	}
	return min(max(quality, domain.MinImageQuality), domain.MaxImageQuality)
}

// DefaultFormat is the format of the single <img src> fallback: webp when
// offered, otherwise the first configured format.
func DefaultFormat(formats []domain.ImageFormat) domain.ImageFormat {
	if slices.Contains(formats, domain.FormatWebP) {
		return domain.FormatWebP
	}
	if len(formats) == 0 {
		return domain.FormatWebP
	}
	return formats[0]
}

// Sizes builds the sizes attribute for a breakpoint set.
func Sizes(width int, breakpoints []int) string {
	if len(breakpoints) == 0 {
		return strconv.Itoa(width) + "px"
	}
	largest := breakpoints[len(breakpoints)-1]
	return fmt.Sprintf("(max-width: %dpx) 100vw, %dpx", largest, max(width, largest))
}

// AspectRatio is width/height, or 1 when height is zero.
func AspectRatio(width, height int) float64 {
	if height == 0 {
		return 1
	}
	return float64(width) / float64(height)
}
