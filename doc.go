// Package mimekit classifies content into MIME types using an ordered catalog
// of known types. Each type carries magic-byte signatures, file extensions and
// a flag saying whether its content is expected to be text.
//
// Every resolution returns exactly one [Descriptor]. When nothing specific
// matches, the result is application/octet-stream for binary content and
// text/plain for valid UTF-8.
//
// # Basic Usage
//
//	// From a file name (extension lookup)
//	d := mimekit.ByName("photo.jpg") // image/jpeg
//
//	// From content (signature sniffing)
//	d = mimekit.ByBytes(data)
//
//	// From a file on disk; falls back to the name when the file is
//	// missing, unreadable or larger than the size ceiling
//	d = mimekit.ByPath("/var/uploads/report")
//
//	fmt.Println(d.Name(), d.Extension(), d.IsTextDecodable())
//
// # Resolution Order
//
// Signatures are matched in catalog order and the first match wins, so more
// specific formats are registered before looser ones. A type flagged as
// text-decodable only matches content that is valid UTF-8: binary data that
// happens to start with "{" is not JSON. Binary types match regardless, so a
// text file starting with "BM" is reported as image/bmp.
//
// # Size Ceiling
//
// [Resolver.ByPath] reads the whole file, so it refuses files larger than
// [Resolver.MaxFileSize] (20MB by default) and guesses from the name instead:
//
//	mimekit.SetMaxFileSize(5 * 1024 * 1024)
//
// # Configuration
//
// The global resolver is configured from the environment:
//
//	BEAVER_MIMEKIT_MAX_FILE_SIZE=20971520
//	BEAVER_MIMEKIT_LOG_LEVEL=warn
//	BEAVER_MIMEKIT_LOG_FORMAT=text
//
// or explicitly:
//
//	r, err := mimekit.New(&mimekit.Config{MaxFileSize: 1 << 20, LogLevel: "error", LogFormat: "json"})
//
// # Custom Catalogs
//
// [NewCatalog] builds a catalog from a fixed list of descriptors. The list must
// contain application/octet-stream and text/plain:
//
//	catalog, err := mimekit.NewCatalog(
//	    mimekit.NewDescriptor("application/octet-stream", false, nil),
//	    mimekit.NewDescriptor("text/plain", true, []string{".txt"}),
//	    mimekit.NewDescriptor("application/x-sqlite3", false, []string{".db"}, []byte("SQLite format 3\x00")),
//	)
//	r := mimekit.NewResolver(mimekit.WithCatalog(catalog))
package mimekit
