// Package fs provides file system adapters for deploying and verifying the bundle.
package fs

import (
	"io/fs"
	"iter"
)

// Walker provides file walking functionality over an fs.FS.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file at or below root in fsys, in lexical order.
// If root is a file it is yielded on its own. Walk errors are yielded with an empty path
// and end the iteration.
func (w *Walker) WalkFiles(fsys fs.FS, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !yield(path, nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
