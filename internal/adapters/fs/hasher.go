package fs

import (
	"io"
	"io/fs"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of file contents.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of the content of name in fsys.
func (h *Hasher) ComputeFileHash(fsys fs.FS, name string) (uint64, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", name)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", name)
	}

	return hasher.Sum64(), nil
}
