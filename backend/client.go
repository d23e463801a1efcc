// Package backend is the HTTP client for the storefront backend service.
// Every page controller goes through it; nothing in this tier persists data.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// sessionCookie is the cookie name the backend issues on login and expects
// on every authenticated call.
const sessionCookie = "access_token"

const maxErrorBody = 64 << 10

// Client issues requests against a single backend base URL. The zero value
// is not usable; construct with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is a non-2xx backend response. Message carries the server's text
// body when one was present, so callers can surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.StatusCode)
}

// UserMessage is the text to show the user: the server body if present,
// otherwise the supplied fallback.
func (e *APIError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, token, body, contentType)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// checkStatus converts a non-2xx response into *APIError, reading the body
// as the server's message. The response body is consumed either way.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(raw)),
	}
}

// decode unmarshals a 2xx response body into target, or returns *APIError
// for non-2xx. A nil target discards the body.
func decode(resp *http.Response, target interface{}) error {
	if err := checkStatus(resp); err != nil {
		return err
	}
	defer resp.Body.Close()
	if target == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readBody drains a 2xx response into a byte slice, or returns *APIError.
func readBody(resp *http.Response) ([]byte, error) {
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// multipartBody assembles a multipart form from string fields plus optional
// file parts. Empty field values are skipped, matching how the browser forms
// this replaces omitted blank optional inputs.
func multipartBody(fields map[string]string, files map[string]*multipart.FileHeader) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	for name, fh := range files {
		if fh == nil {
			continue
		}
		src, err := fh.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		part, err := w.CreateFormFile(name, fh.Filename)
		if err != nil {
			src.Close()
			return nil, "", err
		}
		if _, err := io.Copy(part, src); err != nil {
			src.Close()
			return nil, "", fmt.Errorf("copy upload %s: %w", fh.Filename, err)
		}
		src.Close()
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields map[string]string, files map[string]*multipart.FileHeader) (*http.Response, error) {
	body, contentType, err := multipartBody(fields, files)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, method, path, token, body, contentType)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
