package interceptor

import (
	"context"
	"net/http"
	"net/url"
)

// Request describes an outgoing call as seen by the interceptor.
type Request struct {
	// Method is the HTTP verb.
	Method string
	// URL is the request target.
	URL *url.URL
	// Header holds the request headers.
	Header http.Header
}

// URI returns the request target as it appears in the log line.
func (r *Request) URI() string {
	if r.URL == nil {
		return ""
	}

	return r.URL.String()
}

// Response is the outcome of an execution.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// ExecutionFunc adapts an ordinary function to the Execution interface.
type ExecutionFunc func(ctx context.Context, req *Request, body []byte) (*Response, error)

// Execute calls f(ctx, req, body).
func (f ExecutionFunc) Execute(ctx context.Context, req *Request, body []byte) (*Response, error) {
	return f(ctx, req, body)
}
