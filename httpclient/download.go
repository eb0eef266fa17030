package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Download performs a streaming GET of url and accumulates the full body in
// memory. The body is read through a size guard: if it exceeds the client's
// MaxDownloadBytes, the download is aborted with a too-large error instead
// of growing without bound.
//
// Connection and DNS failures surface as connection errors; a non-2xx status
// is classified into a typed error with the response body attached.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	maxBytes := c.config.MaxDownloadBytes

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error bodies are small; still guard the read.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
		return nil, ClassifyStatusCode(resp.StatusCode, body)
	}

	var buf bytes.Buffer
	// Read one byte past the cap so an exactly-at-limit body still succeeds.
	n, err := io.Copy(&buf, io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}
	if n > maxBytes {
		return nil, NewTooLargeError(maxBytes)
	}

	return buf.Bytes(), nil
}
