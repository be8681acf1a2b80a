package mimekit

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// DefaultMaxFileSize is the size ceiling used when none is configured (20MB)
const DefaultMaxFileSize int64 = 20 * 1024 * 1024

// Resolver maps names, byte buffers and files to exactly one Descriptor.
// All resolution methods are total: when nothing more specific matches they
// return the catalog's binary or text fallback. A Resolver is safe for
// concurrent use.
type Resolver struct {
	catalog     *Catalog
	logger      logrus.FieldLogger
	maxFileSize atomic.Int64
}

// NewResolver creates a Resolver. Without options it uses the built-in
// catalog, a 20MB size ceiling and a stderr logger at warn level.
func NewResolver(opts ...Option) *Resolver {
	options := processOptions(opts...)
	r := &Resolver{
		catalog: options.Catalog,
		logger:  options.Logger,
	}
	r.SetMaxFileSize(options.MaxFileSize)
	return r
}

// Catalog returns the catalog r consults
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// SetMaxFileSize changes the largest file ByPath will read. Negative values
// are treated as 0. Only later calls are affected.
func (r *Resolver) SetMaxFileSize(n int64) {
	if n < 0 {
		n = 0
	}
	r.maxFileSize.Store(n)
}

// MaxFileSize returns the current size ceiling in bytes
func (r *Resolver) MaxFileSize() int64 {
	return r.maxFileSize.Load()
}

// ByName guesses the type from the extension of fileName.
func (r *Resolver) ByName(fileName string) Descriptor {
	if d, ok := r.catalog.FindByExtension(fileName); ok {
		return d
	}
	return r.catalog.Binary()
}

// ByBytes detects the type from content. Valid UTF-8 that matches no
// signature is text/plain; anything else unmatched is application/octet-stream.
// An empty buffer is valid UTF-8 and therefore text/plain.
func (r *Resolver) ByBytes(content []byte) Descriptor {
	decodable := utf8.Valid(content)
	if d, ok := r.catalog.FindBySignature(content, decodable); ok {
		return d
	}
	if decodable {
		return r.catalog.Text()
	}
	return r.catalog.Binary()
}

// ByPath detects the type of the file at path from its content. It falls
// back to ByName on the base name when the path is not a regular file, is
// larger than MaxFileSize, or cannot be read. Fallbacks are logged.
func (r *Resolver) ByPath(path string) Descriptor {
	log := r.logger.WithField("path", path)
	limit := r.MaxFileSize()

	content, err := readFile(path, limit)
	switch {
	case err == nil:
		return r.ByBytes(content)
	case IsNotRegular(err):
		log.WithError(err).Warn("no such file; guessing type from name")
	case IsTooLarge(err):
		log.WithError(err).WithField("limit", limit).Warn("file exceeds max file size; not reading")
	default:
		log.WithError(err).Error("open error; guessing type from name")
	}
	return r.ByName(filepath.Base(path))
}

// ByReader reads at most MaxFileSize bytes from rd and detects their type.
// When rd holds more than that, or reading fails, it returns the binary
// fallback together with the error.
func (r *Resolver) ByReader(rd io.Reader) (Descriptor, error) {
	content, err := readLimited(rd, r.MaxFileSize())
	if err != nil {
		return r.catalog.Binary(), err
	}
	return r.ByBytes(content), nil
}

// Lookup returns the descriptor registered under the canonical name.
func (r *Resolver) Lookup(name string) (Descriptor, bool) {
	return r.catalog.FindByName(name)
}

// FromString is Lookup with the binary fallback for unknown names.
func (r *Resolver) FromString(name string) Descriptor {
	if d, ok := r.catalog.FindByName(name); ok {
		return d
	}
	return r.catalog.Binary()
}

// readFile returns the content of the regular file at path. Content is never
// read when the file is larger than limit, and reading stops at limit+1
// bytes in case the file grows after the size check.
func readFile(path string, limit int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Op: "stat", Path: path, Err: fmt.Errorf("%w: %w", ErrNotRegular, err)}
	}
	if !info.Mode().IsRegular() {
		return nil, &PathError{Op: "stat", Path: path, Err: ErrNotRegular}
	}
	if info.Size() > limit {
		return nil, &PathError{Op: "stat", Path: path, Err: fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	content, err := readLimited(f, limit)
	if err != nil {
		return nil, &PathError{Op: "read", Path: path, Err: err}
	}
	return content, nil
}

func readLimited(rd io.Reader, limit int64) ([]byte, error) {
	if limit < math.MaxInt64 {
		rd = io.LimitReader(rd, limit+1)
	}
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return content, nil
}
