package config

import (
	"fmt"
	"strconv"
	"strings"

	"dive-media/domain"
)

// ParseFormats parses a comma-separated format list such as "avif,webp".
// Duplicates are dropped; order is kept.
func ParseFormats(raw string) ([]domain.ImageFormat, error) {
	var formats []domain.ImageFormat
	seen := make(map[domain.ImageFormat]bool)
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := domain.ParseImageFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// ParseWarmTargets parses WARMER_URLS entries of the form "url|width|height".
func ParseWarmTargets(raw string) ([]domain.ImageRequest, error) {
	var targets []domain.ImageRequest
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("warm target %q must be url|width|height", entry)
		}

		width, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || width < 1 {
			return nil, fmt.Errorf("warm target %q has invalid width", entry)
		}
		height, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || height < 1 {
			return nil, fmt.Errorf("warm target %q has invalid height", entry)
		}

		targets = append(targets, domain.ImageRequest{
			SourceURL: strings.TrimSpace(parts[0]),
			Width:     width,
			Height:    height,
		})
	}
	return targets, nil
}
