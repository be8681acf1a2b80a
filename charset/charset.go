// Package charset decodes text of unknown encoding by trying a list of
// candidate encodings in order.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUndetected is returned when none of the candidate encodings can decode the data
var ErrUndetected = errors.New("charset detection failed")

// ErrUnknownEncoding is returned by Lookup for names it does not recognize
var ErrUnknownEncoding = errors.New("unknown encoding")

// DefaultOrder is tried when Decode is called without an explicit order.
// UTF-8 comes first because it is the only strict candidate: the legacy
// multi-byte encodings accept most byte sequences.
var DefaultOrder = []string{
	"utf-8",
	"shift_jis",
	"euc-jp",
	"iso-2022-jp",
	"utf-16",
	"utf-16be",
	"utf-16le",
}

var replacement = []byte(string(utf8.RuneError))

// Lookup returns the encoding registered under name. "utf-16" requires a
// byte order mark and "utf-8-sig" strips one; other names follow the WHATWG
// encoding labels.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), nil
	case "utf-8-sig", "utf_8_sig":
		return unicode.UTF8BOM, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Decode converts data to a UTF-8 string using the first encoding in order
// that decodes it cleanly, and returns that encoding's name. A decoding is
// rejected when it fails or introduces U+FFFD replacement characters.
// Unknown encoding names are skipped.
func Decode(data []byte, order ...string) (string, string, error) {
	if len(order) == 0 {
		order = DefaultOrder
	}

	for _, name := range order {
		enc, err := Lookup(name)
		if err != nil {
			continue
		}
		if text, ok := decodeStrict(enc, data); ok {
			return text, name, nil
		}
	}

	return "", "", fmt.Errorf("%w (tried: %s)", ErrUndetected, strings.Join(order, ","))
}

func decodeStrict(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	// replacement characters already in data are kept; any extra ones mark
	// bytes the decoder could not map
	if bytes.Count(out, replacement) > bytes.Count(data, replacement) {
		return "", false
	}
	if !utf8.Valid(out) {
		return "", false
	}
	return string(out), true
}
