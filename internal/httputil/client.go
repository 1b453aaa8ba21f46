package httputil

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/erraggy/oasspell/spellerrors"
)

// DefaultTimeout is applied to clients created by Client.
const DefaultTimeout = 30 * time.Second

// Client returns c, or a new client with DefaultTimeout when c is nil.
func Client(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// IsURL reports whether path is an http or https URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}

// IsJSON reports whether a Content-Type header names a JSON media type
// (application/json or any +json suffix).
func IsJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// ReadLimited reads r up to limit bytes. Reading more than limit bytes is a
// *spellerrors.ResourceLimitError. A limit <= 0 reads everything.
func ReadLimited(r io.Reader, limit int64, resource string) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, &spellerrors.ResourceLimitError{
			ResourceType: resource,
			Limit:        limit,
			Message:      fmt.Sprintf("input exceeds %d bytes", limit),
		}
	}
	return data, nil
}

// Fetch GETs url and returns the body and Content-Type header. Non-200
// responses are errors.
func Fetch(ctx context.Context, client *http.Client, url, userAgent string, maxSize int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := Client(client).Do(req) //nolint:gosec // URL is user-provided input
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := ReadLimited(resp.Body, maxSize, "file_size")
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
