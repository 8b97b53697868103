package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oshokin/restlog/internal/interceptor"
)

// LogTransport is a custom http.RoundTripper that logs HTTP requests and responses.
// It wraps another http.RoundTripper and passes each call through a LoggingInterceptor.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// interceptor formats and emits the log lines.
	interceptor *interceptor.LoggingInterceptor
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
	// ErrNilResponse indicates that the underlying round tripper returned neither a response nor an error.
	ErrNilResponse = errors.New("round tripper returned nil response")
)

// NewLogTransport creates and returns a new instance of LogTransport.
// If next is nil, http.DefaultTransport is used.
func NewLogTransport(next http.RoundTripper, li *interceptor.LoggingInterceptor) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &LogTransport{
		next:        next,
		interceptor: li,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
// It implements the http.RoundTripper interface.
//
// While logging is enabled both bodies are read into memory and replaced with
// readers over the same bytes, so the server and the caller see them unchanged.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Skip buffering entirely if nothing would be logged.
	if !t.interceptor.Enabled() {
		return t.next.RoundTrip(req)
	}

	// The body is swapped on a copy; the caller's request must stay untouched.
	req = req.Clone(req.Context())

	body, err := bufferRequestBody(req)
	if err != nil {
		return nil, err
	}

	var httpResponse *http.Response

	execute := interceptor.ExecutionFunc(
		func(_ context.Context, _ *interceptor.Request, _ []byte) (*interceptor.Response, error) {
			resp, roundTripErr := t.next.RoundTrip(req)
			if roundTripErr != nil {
				return nil, roundTripErr
			}

			if resp == nil {
				return nil, ErrNilResponse
			}

			respBody, bufferErr := bufferResponseBody(resp)
			if bufferErr != nil {
				return nil, bufferErr
			}

			httpResponse = resp

			return &interceptor.Response{
				StatusCode: resp.StatusCode,
				Header:     resp.Header,
				Body:       respBody,
			}, nil
		})

	logged := &interceptor.Request{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header,
	}

	if _, err = t.interceptor.Intercept(req.Context(), logged, body, execute); err != nil {
		return nil, err
	}

	return httpResponse, nil
}

// bufferRequestBody reads the request body and puts an equivalent one back.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	req.Body = io.NopCloser(bytes.NewReader(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}

	return body, nil
}

// bufferResponseBody reads the response body and puts an equivalent one back.
func bufferResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
