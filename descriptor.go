package mimekit

import (
	"bytes"
	"slices"
	"strings"
)

// Group is the top-level media type a Descriptor belongs to
// (the part of the canonical name before the slash).
type Group string

const (
	GroupApplication Group = "application"
	GroupText        Group = "text"
	GroupImage       Group = "image"
	GroupAudio       Group = "audio"
	GroupVideo       Group = "video"
	GroupFont        Group = "font"
)

// Descriptor describes one known content type.
// Descriptors are values; the slices they hold are never exposed directly.
type Descriptor struct {
	name       string
	extensions []string
	signatures [][]byte
	decodable  bool
}

// define builds a Descriptor. It is only used while declaring catalogs.
func define(name string, decodable bool, extensions []string, signatures ...[]byte) Descriptor {
	return Descriptor{
		name:       name,
		extensions: extensions,
		signatures: signatures,
		decodable:  decodable,
	}
}

// NewDescriptor creates a Descriptor for use with NewCatalog.
// Extensions must include the leading dot (".png").
func NewDescriptor(name string, decodable bool, extensions []string, signatures ...[]byte) Descriptor {
	sigs := make([][]byte, len(signatures))
	for i, s := range signatures {
		sigs[i] = bytes.Clone(s)
	}
	return define(name, decodable, slices.Clone(extensions), sigs...)
}

// Name returns the canonical type string, e.g. "image/png".
func (d Descriptor) Name() string {
	return d.name
}

// String implements fmt.Stringer
func (d Descriptor) String() string {
	return d.name
}

// Extensions returns the recognized file name suffixes.
func (d Descriptor) Extensions() []string {
	return slices.Clone(d.extensions)
}

// Signatures returns the magic prefixes that identify this type.
func (d Descriptor) Signatures() [][]byte {
	sigs := make([][]byte, len(d.signatures))
	for i, s := range d.signatures {
		sigs[i] = bytes.Clone(s)
	}
	return sigs
}

// IsTextDecodable reports whether content of this type is expected to be text.
func (d Descriptor) IsTextDecodable() bool {
	return d.decodable
}

// IsZero reports whether d is the zero Descriptor.
func (d Descriptor) IsZero() bool {
	return d.name == ""
}

// Equal compares two descriptors by canonical name.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.name == other.name
}

// Group returns the top-level media type of d.
func (d Descriptor) Group() Group {
	group, _, _ := strings.Cut(d.name, "/")
	return Group(group)
}

// In reports whether d belongs to group g.
func (d Descriptor) In(g Group) bool {
	return d.Group() == g
}

// Extension returns the preferred file extension for d, or "" when none is known.
func (d Descriptor) Extension() string {
	if len(d.extensions) == 0 {
		return ""
	}
	return d.extensions[0]
}

// ContentType returns d formatted for an HTTP Content-Type header.
func (d Descriptor) ContentType() string {
	if d.decodable {
		return d.name + "; charset=utf-8"
	}
	return d.name
}

// HasExtension reports whether ext (with leading dot) is one of d's extensions.
// Comparison is case-sensitive.
func (d Descriptor) HasExtension(ext string) bool {
	if ext == "" {
		return false
	}
	return slices.Contains(d.extensions, ext)
}

// MatchesSignature reports whether content starts with one of d's signatures.
func (d Descriptor) MatchesSignature(content []byte) bool {
	for _, sig := range d.signatures {
		if len(sig) > 0 && bytes.HasPrefix(content, sig) {
			return true
		}
	}
	return false
}
