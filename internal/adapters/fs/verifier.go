package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks that a deployed bundle is a byte-for-byte copy of its source.
type Verifier struct {
	walker *Walker
	hasher ports.Hasher
}

// NewVerifier creates a new Verifier.
func NewVerifier(walker *Walker, hasher ports.Hasher) *Verifier {
	return &Verifier{walker: walker, hasher: hasher}
}

// Verify hashes every file below items in source and the file at the same path under root.
// It returns the number of files compared.
func (v *Verifier) Verify(source fs.FS, items []domain.SourceItem, root string) (int, error) {
	deployed := os.DirFS(root)
	count := 0

	for _, item := range items {
		for path, err := range v.walker.WalkFiles(source, string(item)) {
			if err != nil {
				return count, zerr.With(zerr.Wrap(err, "failed to walk source item"), "item", string(item))
			}

			want, err := v.hasher.ComputeFileHash(source, path)
			if err != nil {
				return count, err
			}
			got, err := v.hasher.ComputeFileHash(deployed, path)
			if err != nil {
				return count, errors.Join(domain.ErrVerificationFailed, err)
			}
			if want != got {
				return count, errors.Join(domain.ErrVerificationFailed,
					zerr.With(zerr.New("content hash differs"), "path", path))
			}
			count++
		}
	}

	return count, nil
}
