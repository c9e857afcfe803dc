package storage

// Adapter is the physical storage contract consumed by the workspace and
// resource services. Paths are workspace-relative, with or without a leading
// separator; Resolve returns the canonical storage path (absolute path for
// local, object key for S3) that metadata records as directoryName. Every
// method accepts both the logical and the canonical form and maps them to
// the same location.
type Adapter interface {
	// CreateDirectories creates the directory and all parents, idempotently.
	CreateDirectories(path string) error

	// Write stores data at path, overwriting any existing content.
	Write(path string, data []byte) error

	// Read returns the full content stored at path.
	Read(path string) ([]byte, error)

	// Move relocates a file or directory.
	Move(oldPath, newPath string) error

	// Delete removes a single file or an empty directory.
	Delete(path string) error

	// Exists reports whether anything is stored at path.
	Exists(path string) bool

	// Walk lists every entry under path, deepest-first, so that callers can
	// delete files before their containing directories. The listing includes
	// path itself.
	Walk(path string) ([]string, error)

	// Resolve joins parts into the canonical storage path.
	Resolve(parts ...string) string
}
