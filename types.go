package mimekit

// Common MIME types
const (
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeApplicationZip  = "application/zip"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextXML         = "text/xml"
	MIMETypeTextCSS         = "text/css"
	MIMETypeTextJavaScript  = "text/javascript"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageTIFF       = "image/tiff"
	MIMETypeImageBMP        = "image/bmp"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
)

func exts(e ...string) []string { return e }

// builtinTypes is the default catalog, in registration order.
// The first twelve entries keep their historical order; new formats go
// after them so existing classifications do not change. Signatures that
// overlap must list the more specific type first. Binary signatures are also
// tried against valid UTF-8, so printable ones carry the next fixed header
// byte where the format has one; "BM", "II", "MM", "fLaC" and the woff tags
// still match text that starts with them.
var builtinTypes = []Descriptor{
	// application
	define(MIMETypeOctetStream, false, nil),
	define(MIMETypeApplicationPDF, false, exts(".pdf"), []byte("%PDF")),
	define(MIMETypeApplicationJSON, true, exts(".json"), []byte("{"), []byte("[")),

	// text
	define(MIMETypeTextHTML, true, exts(".htm", ".html", ".xhtm", ".xhtml"),
		[]byte("<!DOCTYPE"), []byte("<html"), []byte("<HTML")),
	define(MIMETypeTextPlain, true, exts(".txt")),
	define(MIMETypeTextXML, true, exts(".xml"), []byte("<?xml")),

	// image
	define(MIMETypeImageJPEG, false, exts(".jpg", ".jpeg", ".jpe"), []byte{0xFF, 0xD8}),
	define(MIMETypeImagePNG, false, exts(".png"), []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}),
	define(MIMETypeImageGIF, false, exts(".gif"), []byte("GIF87a"), []byte("GIF89a")),
	define(MIMETypeImageTIFF, false, exts(".tif", ".tiff"), []byte{0x49, 0x49}, []byte{0x4D, 0x4D}),
	define(MIMETypeImageBMP, false, exts(".bmp"), []byte("BM")),
	define(MIMETypeImageSVG, true, exts(".svg", ".svgz"), []byte("<svg")),
	define("image/x-icon", false, exts(".ico"), []byte{0x00, 0x00, 0x01, 0x00}),
	define(MIMETypeImageWebP, false, exts(".webp")), // RIFF container, signature not at offset 0

	// archives
	define(MIMETypeApplicationZip, false, exts(".zip"),
		[]byte{0x50, 0x4B, 0x03, 0x04},
		[]byte{0x50, 0x4B, 0x05, 0x06}, // Empty ZIP
		[]byte{0x50, 0x4B, 0x07, 0x08}, // Spanned ZIP
	),
	define("application/gzip", false, exts(".gz", ".tgz"), []byte{0x1F, 0x8B}),
	define("application/x-7z-compressed", false, exts(".7z"), []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}),
	define("application/x-rar-compressed", false, exts(".rar"),
		[]byte("Rar!\x1a\x07\x00"),
		[]byte("Rar!\x1a\x07\x01\x00"), // RAR5
	),
	define("application/x-xz", false, exts(".xz"), []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}),

	// executables
	define("application/x-executable", false, nil, []byte{0x7F, 'E', 'L', 'F'}),
	define("application/wasm", false, exts(".wasm"), []byte{0x00, 'a', 's', 'm'}),

	// audio
	define(MIMETypeAudioMP3, false, exts(".mp3"),
		[]byte("ID3\x02"), // ID3v2 tag, major version 2-4
		[]byte("ID3\x03"),
		[]byte("ID3\x04"),
		[]byte{0xFF, 0xFB}, // frame sync
		[]byte{0xFF, 0xF3},
		[]byte{0xFF, 0xF2},
	),
	define(MIMETypeAudioOGG, false, exts(".ogg", ".oga"), []byte("OggS\x00")),
	define("audio/flac", false, exts(".flac"), []byte("fLaC")),

	// video
	define(MIMETypeVideoWebM, false, exts(".webm"), []byte{0x1A, 0x45, 0xDF, 0xA3}),
	define("video/x-matroska", false, exts(".mkv")), // same EBML header as WebM
	define(MIMETypeVideoMP4, false, exts(".mp4", ".m4v")),

	// fonts
	define("font/woff", false, exts(".woff"), []byte("wOFF")),
	define("font/woff2", false, exts(".woff2"), []byte("wOF2")),
	define("font/otf", false, exts(".otf"), []byte("OTTO\x00")), // numTables high byte
	define("font/ttf", false, exts(".ttf"), []byte{0x00, 0x01, 0x00, 0x00}),

	// text without a reliable signature
	define(MIMETypeTextCSS, true, exts(".css")),
	define(MIMETypeTextJavaScript, true, exts(".js", ".mjs")),
	define("text/csv", true, exts(".csv")),
	define("text/markdown", true, exts(".md", ".markdown")),
}
