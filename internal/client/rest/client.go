package rest

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/oshokin/restlog/internal/config"
	"github.com/oshokin/restlog/internal/interceptor"
	"github.com/oshokin/restlog/internal/logger"
	http_transport "github.com/oshokin/restlog/internal/transport/http"
	"github.com/oshokin/restlog/internal/utils"
)

// Client sends HTTP requests through the logging pipeline.
type Client interface {
	// Send performs req and returns the fully read response.
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Request describes a call to perform.
type Request struct {
	// Method is the HTTP verb; empty means GET.
	Method string
	// URL is the absolute request target.
	URL string
	// Header holds additional request headers.
	Header http.Header
	// Body is sent as is; nil sends no body.
	Body []byte
}

// Response is the outcome of a call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the response body as received.
	Body []byte
}

// ClientImpl implements the Client interface on top of net/http.
type ClientImpl struct {
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// loggerName names the logger receiving request/response lines.
const loggerName = "http"

// Static error definitions for better error handling.
var (
	// ErrEmptyURL indicates that a request has no target.
	ErrEmptyURL = errors.New("request URL cannot be empty")
)

// NewClient creates and returns a new instance of ClientImpl.
// The transport chain is UserAgentInjector -> LogTransport -> http.DefaultTransport.
func NewClient(cfg *config.Config) (Client, error) {
	return NewClientWithTransport(cfg, http.DefaultTransport)
}

// NewClientWithTransport is NewClient with a custom innermost round tripper.
func NewClientWithTransport(cfg *config.Config, base http.RoundTripper) (Client, error) {
	loggingInterceptor, err := interceptor.NewLoggingInterceptor(
		logger.NewSink(loggerName),
		interceptor.WithDefaultCharset(cfg.ParsedDefaultCharset),
		interceptor.WithMaxBodyLength(cfg.ParsedMaxBodyLogLength),
		interceptor.WithContentDecoding(cfg.DecodeContentEncoding),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging interceptor: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(base, loggingInterceptor),
			utils.NewStaticUserAgentProvider(cfg.UserAgent)),
		Timeout: timeout,
	}

	return &ClientImpl{httpClient: httpClient}, nil
}

// Send performs req and returns the fully read response.
func (c *ClientImpl) Send(ctx context.Context, req *Request) (*Response, error) {
	if req.URL == "" {
		return nil, ErrEmptyURL
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	request, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for name, values := range req.Header {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       responseBody,
	}, nil
}
