// Package compress undoes HTTP Content-Encoding so that compressed bodies can be logged as text.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Type identifies a single content coding.
type Type int8

// Supported content codings.
const (
	TypeNone Type = iota
	TypeGzip
	TypeDeflate
	TypeZstd
	TypeBr
)

// Static error definitions for better error handling.
var (
	// ErrUnsupportedEncoding indicates that a content coding is not supported.
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
)

//nolint:gochecknoglobals // Immutable lookup table used as a constant.
var typeByToken = map[string]Type{
	"":         TypeNone,
	"identity": TypeNone,
	"gzip":     TypeGzip,
	"x-gzip":   TypeGzip,
	"deflate":  TypeDeflate,
	"zstd":     TypeZstd,
	"br":       TypeBr,
}

// ParseType returns the coding named by a single Content-Encoding token.
func ParseType(token string) (Type, error) {
	t, ok := typeByToken[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return TypeNone, fmt.Errorf("%w: '%s'", ErrUnsupportedEncoding, token)
	}

	return t, nil
}

// maxZstdWindow bounds the memory a zstd frame may ask the decoder for.
const maxZstdWindow = 8 << 20

// Decompress reverses a Content-Encoding header value.
// Codings listed as "gzip, br" were applied in order, so they are removed from last to first.
func Decompress(data []byte, contentEncoding string) ([]byte, error) {
	return DecompressLimit(data, contentEncoding, 0)
}

// DecompressLimit is Decompress that stops after limit+1 bytes of output, so callers can
// tell a cut body from one that fits. A zero limit reads everything.
// The codings are streamed, so memory use follows the limit rather than the decoded size.
func DecompressLimit(data []byte, contentEncoding string, limit uint64) ([]byte, error) {
	tokens := strings.Split(contentEncoding, ",")
	types := make([]Type, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		t, err := ParseType(tokens[i])
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return decompress(data, types, limit)
}

// DecompressType removes a single content coding from data.
func DecompressType(data []byte, t Type) ([]byte, error) {
	return decompress(data, []Type{t}, 0)
}

func decompress(data []byte, types []Type, limit uint64) ([]byte, error) {
	var (
		r       io.Reader = bytes.NewReader(data)
		closers []func()
	)

	defer func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}()

	for _, t := range types {
		next, closeFn, err := newReader(r, t)
		if err != nil {
			return nil, err
		}

		r = next

		if closeFn != nil {
			closers = append(closers, closeFn)
		}
	}

	if limit > 0 {
		r = io.LimitReader(r, limitToInt64(limit))
	}

	decoded, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress body: %w", err)
	}

	return decoded, nil
}

// newReader wraps r with a reader removing content coding t.
func newReader(r io.Reader, t Type) (io.Reader, func(), error) {
	switch t {
	case TypeNone:
		return r, nil, nil
	case TypeGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}

		return gr, func() { gr.Close() }, nil //nolint:errcheck,gosec // Error on close is not critical here.
	case TypeDeflate:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open deflate stream: %w", err)
		}

		return zr, func() { zr.Close() }, nil //nolint:errcheck,gosec // Error on close is not critical here.
	case TypeZstd:
		d, err := zstd.NewReader(r,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
			zstd.WithDecoderMaxWindow(maxZstdWindow))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}

		return d, d.Close, nil
	case TypeBr:
		return brotli.NewReader(r), nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, t)
	}
}

// limitToInt64 returns limit+1 as an io.LimitReader bound.
func limitToInt64(limit uint64) int64 {
	if limit >= math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(limit) + 1 //nolint:gosec // Checked against math.MaxInt64 above.
}
