package config

import (
	"testing"

	"dive-media/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	formats, err := ParseFormats(" avif, webp ,avif,,JPEG")
	require.NoError(t, err)
	assert.Equal(t, []domain.ImageFormat{domain.FormatAVIF, domain.FormatWebP, domain.FormatJPG}, formats)

	formats, err = ParseFormats("")
	require.NoError(t, err)
	assert.Empty(t, formats)

	_, err = ParseFormats("webp,tiff")
	assert.Error(t, err)
}

func TestParseWarmTargets(t *testing.T) {
	targets, err := ParseWarmTargets("https://example.com/a.png|800|450, https://example.com/b.jpg | 1200 | 800 ,")
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, domain.ImageRequest{SourceURL: "https://example.com/a.png", Width: 800, Height: 450}, targets[0])
	assert.Equal(t, domain.ImageRequest{SourceURL: "https://example.com/b.jpg", Width: 1200, Height: 800}, targets[1])

	for _, bad := range []string{"https://example.com/a.png", "u|x|1", "u|1|0", "u|1|2|3"} {
		_, err := ParseWarmTargets(bad)
		assert.Error(t, err, bad)
	}
}
