// Package client holds the HTTP plumbing shared by the catalog, booking and
// SMS facades.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, bytes.TrimSpace(e.Body))
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Base issues JSON requests relative to a base URL.
type Base struct {
	BaseURL *url.URL
	HTTP    *http.Client
}

// NewBase parses baseURL. A nil hc means http.DefaultClient.
func NewBase(baseURL string, hc *http.Client) (*Base, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Base{BaseURL: u, HTTP: hc}, nil
}

// Resolve joins path onto the base URL the way axios does: leading and
// trailing slashes are collapsed.
func (b *Base) Resolve(path string, query url.Values) string {
	u := *b.BaseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends body (JSON-encoded when not nil) and returns the raw response body.
// Transport errors are returned unchanged; non-2xx statuses become *StatusError.
func (b *Base) Do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	target := b.Resolve(path, query)
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: data}
	}
	return data, nil
}

// DoJSON is Do followed by decoding the response into out. Empty bodies leave out untouched.
func (b *Base) DoJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := b.Do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
