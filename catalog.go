package mimekit

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Canonical names of the two fallback types every catalog must carry
const (
	MIMETypeOctetStream = "application/octet-stream"
	MIMETypeTextPlain   = "text/plain"
)

// Catalog is an ordered, read-only collection of descriptors.
// Order is the tie-break rule: when several descriptors match the same
// input, the one registered first wins.
type Catalog struct {
	descriptors []Descriptor
	byName      map[string]int
	binary      Descriptor
	text        Descriptor
}

// NewCatalog builds a Catalog from descs, keeping their order.
func NewCatalog(descs ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		descriptors: make([]Descriptor, 0, len(descs)),
		byName:      make(map[string]int, len(descs)),
	}

	for _, d := range descs {
		if err := validateDescriptor(d); err != nil {
			return nil, err
		}
		if _, exists := c.byName[d.name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, d.name)
		}
		c.byName[d.name] = len(c.descriptors)
		c.descriptors = append(c.descriptors, d)
	}

	binary, ok := c.FindByName(MIMETypeOctetStream)
	if !ok || binary.decodable {
		return nil, fmt.Errorf("%w: %s", ErrMissingFallback, MIMETypeOctetStream)
	}
	text, ok := c.FindByName(MIMETypeTextPlain)
	if !ok || !text.decodable {
		return nil, fmt.Errorf("%w: %s", ErrMissingFallback, MIMETypeTextPlain)
	}
	c.binary = binary
	c.text = text

	return c, nil
}

// validateDescriptor checks the type/subtype form of the name and rejects
// empty signatures, which would match every input.
func validateDescriptor(d Descriptor) error {
	typ, subtype, ok := strings.Cut(d.name, "/")
	if !ok || typ == "" || subtype == "" ||
		strings.ContainsAny(d.name, " \t;,") || strings.Contains(subtype, "/") {
		return fmt.Errorf("%w: name %q", ErrInvalidType, d.name)
	}
	for _, sig := range d.signatures {
		if len(sig) == 0 {
			return fmt.Errorf("%w: %s has an empty signature", ErrInvalidType, d.name)
		}
	}
	for _, ext := range d.extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %s has extension %q", ErrInvalidType, d.name, ext)
		}
	}
	return nil
}

// FindByExtension returns the first descriptor whose extensions contain the
// suffix of fileName, starting at its last dot.
func (c *Catalog) FindByExtension(fileName string) (Descriptor, bool) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return Descriptor{}, false
	}
	for _, d := range c.descriptors {
		if d.HasExtension(ext) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// FindBySignature returns the first descriptor with a signature that prefixes
// content. Text-decodable descriptors are only considered when decodable is
// true; binary descriptors are considered either way.
func (c *Catalog) FindBySignature(content []byte, decodable bool) (Descriptor, bool) {
	for _, d := range c.descriptors {
		if !d.MatchesSignature(content) {
			continue
		}
		if d.decodable && !decodable {
			continue
		}
		return d, true
	}
	return Descriptor{}, false
}

// FindByName returns the descriptor with the given canonical name.
func (c *Catalog) FindByName(name string) (Descriptor, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return c.descriptors[i], true
}

// Binary returns the generic binary fallback (application/octet-stream).
func (c *Catalog) Binary() Descriptor {
	return c.binary
}

// Text returns the generic text fallback (text/plain).
func (c *Catalog) Text() Descriptor {
	return c.text
}

// All returns every descriptor in registration order.
func (c *Catalog) All() []Descriptor {
	return slices.Clone(c.descriptors)
}

// Len returns the number of registered descriptors.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the built-in catalog.
// Thread-safe, lazy initialization
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(builtinTypes...)
		if err != nil {
			panic(fmt.Sprintf("mimekit: invalid built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
