package charset

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// DefaultName is the name of the charset used when a body declares none.
	DefaultName = "ISO-8859-1"

	// DefaultCacheSize is the number of distinct Content-Type values a Resolver remembers.
	DefaultCacheSize = 256

	// charsetParam is the media type parameter naming the charset.
	charsetParam = "charset"
)

// Default is the encoding used when a body declares no charset.
//
//nolint:gochecknoglobals // Immutable encoding value used as a constant.
var Default encoding.Encoding = charmap.ISO8859_1

// Static error definitions for better error handling.
var (
	// ErrUnknownCharset indicates that a charset label does not name a supported encoding.
	ErrUnknownCharset = errors.New("unknown charset")
)

// Lookup returns the encoding registered for the charset label name.
// IANA names and aliases (latin1, l1, us-ascii) resolve to the exact charset they name;
// labels only browsers know fall back to the WHATWG table.
func Lookup(name string) (encoding.Encoding, error) {
	label := strings.TrimSpace(name)
	if label == "" {
		return nil, fmt.Errorf("%w: empty label", ErrUnknownCharset)
	}

	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, nil
	}

	enc, _ := htmlcharset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownCharset, name)
	}

	return enc, nil
}

// Resolver maps Content-Type header values to encodings.
// It is safe for concurrent use.
type Resolver struct {
	// fallback is returned when no usable charset is declared.
	fallback encoding.Encoding
	// cache holds resolved encodings keyed by the raw Content-Type value.
	cache *lru.Cache[string, encoding.Encoding]
}

// NewResolver creates a Resolver that falls back to the given encoding.
// A nil fallback means Default; a non-positive cacheSize means DefaultCacheSize.
func NewResolver(fallback encoding.Encoding, cacheSize int) (*Resolver, error) {
	if fallback == nil {
		fallback = Default
	}

	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, encoding.Encoding](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create charset cache: %w", err)
	}

	return &Resolver{
		fallback: fallback,
		cache:    cache,
	}, nil
}

// Resolve returns the encoding declared by contentType, or the fallback if the header
// is empty, malformed, has no charset parameter, or names an unknown charset.
func (r *Resolver) Resolve(contentType string) encoding.Encoding {
	if strings.TrimSpace(contentType) == "" {
		return r.fallback
	}

	if enc, ok := r.cache.Get(contentType); ok {
		return enc
	}

	enc := r.fallback

	_, params, err := mime.ParseMediaType(contentType)
	if err == nil {
		if declared, lookupErr := Lookup(params[charsetParam]); lookupErr == nil {
			enc = declared
		}
	}

	r.cache.Add(contentType, enc)

	return enc
}

// Decode converts body to text using the charset declared by contentType.
// Bytes the encoding cannot decode are returned as they are.
func (r *Resolver) Decode(body []byte, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	decoded, err := r.Resolve(contentType).NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}

	return string(decoded)
}
