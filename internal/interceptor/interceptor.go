package interceptor

//go:generate $MOCKGEN -source=interceptor.go -destination=mocks/interceptor_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/oshokin/restlog/internal/charset"
	"github.com/oshokin/restlog/internal/compress"
	"github.com/oshokin/restlog/internal/utils"
)

// Logger is the logging facade used by the interceptor.
type Logger interface {
	// IsDebugEnabled reports whether debug messages would be emitted.
	IsDebugEnabled() bool
	// Debug emits a pre-formatted debug message.
	Debug(ctx context.Context, msg string)
}

// Execution is the next stage of the pipeline.
type Execution interface {
	// Execute performs the request and returns its response.
	Execute(ctx context.Context, req *Request, body []byte) (*Response, error)
}

// DefaultMaxBodyLength is the default maximum length (in bytes) of a logged body.
const DefaultMaxBodyLength = 1 * 1024 * 1024 // 1 MB

const (
	contentTypeHeader     = "Content-Type"
	contentEncodingHeader = "Content-Encoding"
)

// LoggingInterceptor logs requests and responses passing through an HTTP client pipeline.
// It holds no per-call state and is safe for concurrent use when its Logger is.
type LoggingInterceptor struct {
	// log receives the formatted lines.
	log Logger
	// resolver decodes bodies according to their declared charset.
	resolver *charset.Resolver
	// defaultCharset is used when a body declares no charset.
	defaultCharset encoding.Encoding
	// maxBodyLength caps the logged body text; zero disables the cap.
	maxBodyLength uint64
	// decodeContent enables removing Content-Encoding before a body is logged.
	decodeContent bool
}

// Option configures a LoggingInterceptor.
type Option func(*LoggingInterceptor)

// WithDefaultCharset sets the charset used when a body declares none.
func WithDefaultCharset(enc encoding.Encoding) Option {
	return func(i *LoggingInterceptor) {
		if enc != nil {
			i.defaultCharset = enc
		}
	}
}

// WithMaxBodyLength sets the maximum length of a logged body. Zero means unlimited.
func WithMaxBodyLength(maxBodyLength uint64) Option {
	return func(i *LoggingInterceptor) {
		i.maxBodyLength = maxBodyLength
	}
}

// WithContentDecoding makes the interceptor log compressed bodies in their decompressed form.
func WithContentDecoding(enabled bool) Option {
	return func(i *LoggingInterceptor) {
		i.decodeContent = enabled
	}
}

// NewLoggingInterceptor creates a LoggingInterceptor writing to log.
func NewLoggingInterceptor(log Logger, opts ...Option) (*LoggingInterceptor, error) {
	i := &LoggingInterceptor{
		log:            log,
		defaultCharset: charset.Default,
		maxBodyLength:  DefaultMaxBodyLength,
	}

	for _, opt := range opts {
		opt(i)
	}

	resolver, err := charset.NewResolver(i.defaultCharset, charset.DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	i.resolver = resolver

	return i, nil
}

// Enabled reports whether Intercept would log anything right now.
// Callers use it to skip buffering bodies when logging is off.
func (i *LoggingInterceptor) Enabled() bool {
	return i.log.IsDebugEnabled()
}

// Intercept logs req and body, delegates to next and logs the response it returns.
// The request, body and response are passed through unchanged, and any error from next
// is returned as is.
func (i *LoggingInterceptor) Intercept(
	ctx context.Context,
	req *Request,
	body []byte,
	next Execution,
) (*Response, error) {
	if i.log.IsDebugEnabled() {
		i.log.Debug(ctx, fmt.Sprintf("Request: %s %s %s", req.Method, req.URI(), i.bodyText(req.Header, body)))
	}

	resp, err := next.Execute(ctx, req, body)
	if err != nil {
		return resp, err
	}

	if resp != nil && i.log.IsDebugEnabled() {
		i.log.Debug(ctx, fmt.Sprintf("Response: %d %s", resp.StatusCode, i.bodyText(resp.Header, resp.Body)))
	}

	return resp, nil
}

// bodyText renders body for the log using the charset declared in header.
func (i *LoggingInterceptor) bodyText(header http.Header, body []byte) string {
	capped := false

	if i.decodeContent {
		if contentEncoding := header.Get(contentEncodingHeader); contentEncoding != "" {
			// A body that fails to decompress is logged as received.
			decoded, err := compress.DecompressLimit(body, contentEncoding, i.maxBodyLength)
			if err == nil {
				body = decoded
				capped = i.maxBodyLength > 0 && uint64(len(decoded)) > i.maxBodyLength
			}
		}
	}

	text := utils.Truncate(i.resolver.Decode(body, header.Get(contentTypeHeader)), i.maxBodyLength)

	// Decompression stopped early, so the decoded text is incomplete even if it fits.
	if capped && !strings.HasSuffix(text, utils.TruncatedSuffix) {
		text += utils.TruncatedSuffix
	}

	return text
}
