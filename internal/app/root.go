package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/oshokin/restlog/internal/client/rest"
	"github.com/oshokin/restlog/internal/config"
	"github.com/oshokin/restlog/internal/logger"
	"github.com/oshokin/restlog/internal/utils"
)

// RequestParams holds the request described on the command line.
type RequestParams struct {
	// Method is the HTTP verb.
	Method string
	// URL is the request target.
	URL string
	// Data is the request body.
	Data string
	// Headers are raw "Name: value" header lines.
	Headers []string
}

// Static error definitions for better error handling.
var (
	// ErrInvalidHeader indicates that a header line is not in "Name: value" form.
	ErrInvalidHeader = errors.New("invalid header, expected 'Name: value'")
)

// ExecuteRootCommand is the entry point for the application.
// It builds the logging client and sends the request, printing the response body to stdout.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, params RequestParams) {
	client, err := rest.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP client: %v", err)
	}

	if err = Run(ctx, client, params, os.Stdout); err != nil {
		logger.Fatalf(ctx, "Request failed: %v", err)
	}
}

// Run sends the request described by params and writes the response body to out.
func Run(ctx context.Context, client rest.Client, params RequestParams, out io.Writer) error {
	header, err := ParseHeaders(params.Headers)
	if err != nil {
		return err
	}

	req := &rest.Request{
		Method: strings.ToUpper(strings.TrimSpace(params.Method)),
		URL:    strings.TrimSpace(params.URL),
		Header: header,
	}

	if params.Data != "" {
		req.Body = []byte(params.Data)
	}

	resp, err := client.Send(ctx, req)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "%s %s -> %d", req.Method, req.URL, resp.StatusCode)

	if _, err = out.Write(resp.Body); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}

	return nil
}

// ParseHeaders converts "Name: value" lines into an http.Header.
func ParseHeaders(lines []string) (http.Header, error) {
	header := make(http.Header, len(lines))

	for _, line := range utils.Map(lines, strings.TrimSpace) {
		name, value, found := strings.Cut(line, ":")
		name = strings.TrimSpace(name)

		if !found || name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidHeader, line)
		}

		header.Add(name, strings.TrimSpace(value))
	}

	return header, nil
}
