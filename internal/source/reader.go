// Package source reads GABC sources from disk.
// It transparently handles gzip and xz compressed files.
package source

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/gabc2volpiano/core/errors"
	"github.com/FocuswithJustin/gabc2volpiano/internal/validation"
)

// Compression identifies how a source is encoded on disk.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionXZ   Compression = "xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// Extensions lists the file suffixes recognised as GABC sources.
var Extensions = []string{".gabc", ".gabc.gz", ".gabc.xz"}

// IsSource reports whether the file name has a GABC source suffix.
func IsSource(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ReadFile reads a GABC file and returns its UTF-8 text.
func ReadFile(path string) (string, error) {
	if err := validation.ValidatePath(path); err != nil {
		return "", errors.NewIO("open", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewIO("open", path, fmt.Errorf("%w: %v", errors.ErrNotFound, err))
		}
		return "", errors.NewIO("open", path, err)
	}
	defer f.Close()

	text, err := Read(f)
	if err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return text, nil
}

// Read decodes a GABC source from r, detecting compression from its magic
// bytes. The decoded text must be valid UTF-8 and at most
// validation.MaxFileSize bytes.
func Read(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	var reader io.Reader = br
	switch Detect(br) {
	case CompressionXZ:
		xzr, err := xz.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	case CompressionGzip:
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("gzip reader: %w", err)
		}
		defer gzr.Close()
		reader = gzr
	}

	data, err := io.ReadAll(io.LimitReader(reader, validation.MaxFileSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > validation.MaxFileSize {
		return "", fmt.Errorf("%w: source exceeds %d bytes", errors.ErrInvalidInput, validation.MaxFileSize)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: source is not valid UTF-8", errors.ErrInvalidInput)
	}
	return string(data), nil
}

// Detect peeks at the magic bytes of br without consuming them.
func Detect(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(xzMagic))
	switch {
	case bytes.HasPrefix(head, xzMagic):
		return CompressionXZ
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}
