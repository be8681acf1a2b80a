package mimekit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbacks() []Descriptor {
	return []Descriptor{
		NewDescriptor(MIMETypeOctetStream, false, nil),
		NewDescriptor(MIMETypeTextPlain, true, []string{".txt"}),
	}
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		descs   []Descriptor
		wantErr error
	}{
		{
			name:    "duplicate name",
			descs:   append(fallbacks(), NewDescriptor("image/png", false, nil), NewDescriptor("image/png", false, nil)),
			wantErr: ErrDuplicateType,
		},
		{
			name:    "missing binary fallback",
			descs:   []Descriptor{NewDescriptor(MIMETypeTextPlain, true, nil)},
			wantErr: ErrMissingFallback,
		},
		{
			name:    "missing text fallback",
			descs:   []Descriptor{NewDescriptor(MIMETypeOctetStream, false, nil)},
			wantErr: ErrMissingFallback,
		},
		{
			name: "binary fallback flagged decodable",
			descs: []Descriptor{
				NewDescriptor(MIMETypeOctetStream, true, nil),
				NewDescriptor(MIMETypeTextPlain, true, nil),
			},
			wantErr: ErrMissingFallback,
		},
		{
			name:    "name without subtype",
			descs:   append(fallbacks(), NewDescriptor("png", false, nil)),
			wantErr: ErrInvalidType,
		},
		{
			name:    "name with parameters",
			descs:   append(fallbacks(), NewDescriptor("text/html; charset=utf-8", true, nil)),
			wantErr: ErrInvalidType,
		},
		{
			name:    "empty signature",
			descs:   append(fallbacks(), NewDescriptor("image/png", false, nil, []byte{})),
			wantErr: ErrInvalidType,
		},
		{
			name:    "extension without dot",
			descs:   append(fallbacks(), NewDescriptor("image/png", false, []string{"png"})),
			wantErr: ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.descs...)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NotNil(t, c)
	assert.Same(t, c, DefaultCatalog())

	assert.Equal(t, MIMETypeOctetStream, c.Binary().Name())
	assert.False(t, c.Binary().IsTextDecodable())
	assert.Empty(t, c.Binary().Signatures())
	assert.Equal(t, MIMETypeTextPlain, c.Text().Name())
	assert.True(t, c.Text().IsTextDecodable())
	assert.Empty(t, c.Text().Signatures())

	seen := make(map[string]bool)
	for _, d := range c.All() {
		assert.False(t, seen[d.Name()], "duplicate %s", d.Name())
		seen[d.Name()] = true
		assert.Contains(t, []Group{GroupApplication, GroupText, GroupImage, GroupAudio, GroupVideo, GroupFont}, d.Group())
	}
	assert.Equal(t, len(seen), c.Len())
}

func TestDefaultCatalogOrder(t *testing.T) {
	want := []string{
		"application/octet-stream",
		"application/pdf",
		"application/json",
		"text/html",
		"text/plain",
		"text/xml",
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/tiff",
		"image/bmp",
		"image/svg+xml",
	}

	all := DefaultCatalog().All()
	require.GreaterOrEqual(t, len(all), len(want))
	for i, name := range want {
		assert.Equal(t, name, all[i].Name(), "position %d", i)
	}
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	all[0] = Descriptor{}
	assert.Equal(t, MIMETypeOctetStream, c.All()[0].Name())
}

func TestCatalogFindByExtension(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		fileName string
		want     string
		found    bool
	}{
		{"a.png", "image/png", true},
		{"photo.jpe", "image/jpeg", true},
		{"drawing.svgz", "image/svg+xml", true},
		{"page.xhtml", "text/html", true},
		{"archive.tar.gz", "application/gzip", true},
		{"/some/dir/report.pdf", "application/pdf", true},
		{"UPPER.PNG", "", false},
		{"noext", "", false},
		{"trailing.", "", false},
		{"dir.d/file", "", false},
		{"file.xyz123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			d, ok := c.FindByExtension(tt.fileName)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestCatalogFindBySignatureDecodabilityGate(t *testing.T) {
	c := DefaultCatalog()

	d, ok := c.FindBySignature([]byte(`{"a":1}`), true)
	require.True(t, ok)
	assert.Equal(t, MIMETypeApplicationJSON, d.Name())

	_, ok = c.FindBySignature([]byte(`{"a":1}`), false)
	assert.False(t, ok, "decodable types must not match undecodable content")

	d, ok = c.FindBySignature([]byte("%PDF-1.7"), true)
	require.True(t, ok, "binary types match decodable content")
	assert.Equal(t, MIMETypeApplicationPDF, d.Name())
}

func TestCatalogFindBySignaturePrecedence(t *testing.T) {
	broad := NewDescriptor("application/x-markup", true, nil, []byte("<"))
	html := NewDescriptor("text/html", true, nil, []byte("<!DOCTYPE"))
	content := []byte("<!DOCTYPE html><html></html>")

	htmlFirst, err := NewCatalog(append(fallbacks(), html, broad)...)
	require.NoError(t, err)
	d, ok := htmlFirst.FindBySignature(content, true)
	require.True(t, ok)
	assert.Equal(t, "text/html", d.Name())

	broadFirst, err := NewCatalog(append(fallbacks(), broad, html)...)
	require.NoError(t, err)
	d, ok = broadFirst.FindBySignature(content, true)
	require.True(t, ok)
	assert.Equal(t, "application/x-markup", d.Name())
}

func TestCatalogFindByName(t *testing.T) {
	c := DefaultCatalog()

	d, ok := c.FindByName("image/png")
	require.True(t, ok)
	assert.Contains(t, d.Extensions(), ".png")

	_, ok = c.FindByName("IMAGE/PNG")
	assert.False(t, ok)

	_, ok = c.FindByName("")
	assert.False(t, ok)
}

func TestBuiltinCanonicalNames(t *testing.T) {
	for _, d := range DefaultCatalog().All() {
		typ, subtype, ok := strings.Cut(d.Name(), "/")
		assert.True(t, ok && typ != "" && subtype != "", d.Name())
		assert.Equal(t, strings.ToLower(d.Name()), d.Name())
	}
}
