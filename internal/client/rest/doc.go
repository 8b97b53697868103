// Package rest provides a plain HTTP client whose calls are logged by the logging interceptor.
package rest
