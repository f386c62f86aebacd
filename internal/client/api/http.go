package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmaslov/authgate/internal/errx"
	"github.com/vmaslov/authgate/internal/logging"
)

// DefaultTimeout bounds every outbound call unless the config overrides it.
const DefaultTimeout = 10 * time.Second

// HTTPTransport is the net/http implementation of Transport. Every call is
// bounded by the configured timeout; exactly one outbound request is made
// per invocation, with no retries at this layer.
type HTTPTransport struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	log     logging.Logger
}

// NewHTTPTransport constructs a transport for the given base URL. A zero
// timeout falls back to DefaultTimeout; a nil logger discards output.
func NewHTTPTransport(baseURL string, timeout time.Duration, log logging.Logger) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
		log:     log,
	}
}

func (t *HTTPTransport) Post(ctx context.Context, path string, body any, out any) error {
	return t.do(ctx, http.MethodPost, path, body, out)
}

func (t *HTTPTransport) Get(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodGet, path, nil, out)
}

func (t *HTTPTransport) Put(ctx context.Context, path string, body any, out any) error {
	return t.do(ctx, http.MethodPut, path, body, out)
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errx.Unknown("An unexpected error occurred.").WithCause(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return errx.Unknown("An unexpected error occurred.").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	t.log.Debug(ctx, "http request", "method", method, "path", path, "request_id", requestID)

	resp, err := t.client.Do(req)
	if err != nil {
		mapped := t.mapError(err)
		t.log.Warn(ctx, "http request failed", "method", method, "path", path,
			"request_id", requestID, "error", mapped.Message)
		return mapped
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		mapped := mapStatus(resp.StatusCode)
		t.log.Warn(ctx, "http request rejected", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode)
		return mapped
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errx.Unknown("An unexpected error occurred.").WithCause(err)
		}
	}
	return nil
}

// mapError normalizes a round-trip failure. An error that is already
// *errx.Error (raised earlier in the same call chain) passes through
// unchanged.
func (t *HTTPTransport) mapError(err error) *errx.Error {
	if e, ok := errx.As(err); ok {
		return e
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errx.Network("Request timeout. Please try again.").WithCause(err)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		if ue.Timeout() {
			return errx.Network("Request timeout. Please try again.").WithCause(err)
		}
		return errx.Network("Network error. Please check your connection.").WithCause(err)
	}
	return errx.Unknown("An unexpected error occurred.").WithCause(err)
}

// mapStatus turns a non-2xx response into the corresponding *errx.Error.
func mapStatus(statusCode int) *errx.Error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errx.InvalidCredentials("Invalid email or password", statusCode)
	default:
		return errx.UnknownStatus(http.StatusText(statusCode), statusCode)
	}
}
