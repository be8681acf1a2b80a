package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestDecode(t *testing.T) {
	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("こんにちは"))
	require.NoError(t, err)
	eucjp, err := japanese.EUCJP.NewEncoder().Bytes([]byte("日本語"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		data     []byte
		order    []string
		wantText string
		wantEnc  string
	}{
		{
			name:     "ascii is utf-8",
			data:     []byte("hello"),
			wantText: "hello",
			wantEnc:  "utf-8",
		},
		{
			name:     "utf-8 japanese",
			data:     []byte("こんにちは"),
			wantText: "こんにちは",
			wantEnc:  "utf-8",
		},
		{
			name:     "shift_jis",
			data:     sjis,
			wantText: "こんにちは",
			wantEnc:  "shift_jis",
		},
		{
			name:     "euc-jp with explicit order",
			data:     eucjp,
			order:    []string{"utf-8", "euc-jp"},
			wantText: "日本語",
			wantEnc:  "euc-jp",
		},
		{
			name:     "utf-16 with byte order mark",
			data:     []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00},
			order:    []string{"utf-8", "utf-16"},
			wantText: "hi",
			wantEnc:  "utf-16",
		},
		{
			name:     "unknown names are skipped",
			data:     []byte("plain"),
			order:    []string{"klingon", "utf-8"},
			wantText: "plain",
			wantEnc:  "utf-8",
		},
		{
			name:     "literal replacement character is kept",
			data:     []byte("bad � char"),
			order:    []string{"utf-8"},
			wantText: "bad � char",
			wantEnc:  "utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, enc, err := Decode(tt.data, tt.order...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantEnc, enc)
		})
	}
}

func TestDecodeFailure(t *testing.T) {
	_, _, err := Decode([]byte{0xFF, 0xFE, 0xFD}, "utf-8")
	assert.ErrorIs(t, err, ErrUndetected)
	assert.Contains(t, err.Error(), "utf-8")

	_, _, err = Decode([]byte("text"), "klingon")
	assert.ErrorIs(t, err, ErrUndetected)

	// a literal U+FFFD must not hide an invalid byte elsewhere
	mixed := append([]byte("ok � "), 0xFF, 'x')
	_, _, err = Decode(mixed, "utf-8")
	assert.ErrorIs(t, err, ErrUndetected)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8", "shift_jis", "euc-jp", "utf-16", "utf-16le", "utf-8-sig"} {
		enc, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	_, err := Lookup("klingon")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
