package ports

import "io/fs"

// Hasher defines the interface for computing content hashes.
type Hasher interface {
	// ComputeFileHash returns the content hash of the named file in fsys.
	ComputeFileHash(fsys fs.FS, name string) (uint64, error)
}
