// Package interceptor implements the request/response logging step of an HTTP client pipeline.
//
// A LoggingInterceptor sits between a caller and the next execution stage. When debug logging
// is enabled it emits "Request: METHOD URI body" before delegating and "Response: STATUS body"
// after it, decoding each body with the charset declared by that side's Content-Type header.
// Requests, bodies and responses pass through untouched.
package interceptor
