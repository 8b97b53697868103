// Package http provides custom HTTP transport utilities:
// a RoundTripper that runs every call through the logging interceptor,
// and User-Agent header injection.
package http
