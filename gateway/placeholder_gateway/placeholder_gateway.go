package placeholder_gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"dive-media/utils/errors"

	"golang.org/x/image/webp"
)

// maxPlaceholderBytes bounds the tiny preview download.
const maxPlaceholderBytes = 256 * 1024

// PlaceholderGateway implements transform_port.PlaceholderPort.
type PlaceholderGateway struct {
	httpClient *http.Client
}

func NewPlaceholderGateway(httpClient *http.Client) *PlaceholderGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &PlaceholderGateway{httpClient: httpClient}
}

// BuildPlaceholder fetches placeholderURL and returns it as a WebP data URL.
func (g *PlaceholderGateway) BuildPlaceholder(ctx context.Context, placeholderURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, placeholderURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "image/webp")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.NewExternalAPIContextError("placeholder request failed", "gateway", "PlaceholderGateway", "http_request", err,
			map[string]interface{}{"url": placeholderURL})
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewExternalAPIContextError(
			fmt.Sprintf("placeholder request returned %d", resp.StatusCode),
			"gateway", "PlaceholderGateway", "http_response",
			fmt.Errorf("status code: %d", resp.StatusCode),
			map[string]interface{}{"url": placeholderURL, "status_code": resp.StatusCode})
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPlaceholderBytes+1))
	if err != nil {
		return "", fmt.Errorf("read placeholder body: %w", err)
	}
	if len(data) > maxPlaceholderBytes {
		return "", fmt.Errorf("placeholder exceeds %d bytes", maxPlaceholderBytes)
	}

	if _, err := webp.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("placeholder is not a valid webp image: %w", err)
	}

	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(data), nil
}
