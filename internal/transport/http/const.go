package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"
)
