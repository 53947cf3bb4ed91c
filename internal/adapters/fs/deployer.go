package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/zerr"
)

// dirPerm is used for every directory the deployer creates. Hosts read them as the same user.
const dirPerm = 0o755

var _ ports.Deployer = (*Deployer)(nil)

// Deployer copies bundle items from a read-only source filesystem into target directories.
type Deployer struct {
	source   fs.FS
	verifier ports.Verifier
}

// NewDeployer creates a Deployer reading items from source.
func NewDeployer(source fs.FS, verifier ports.Verifier) *Deployer {
	return &Deployer{source: source, verifier: verifier}
}

// Deploy previews or performs the installation of items into target.
//
// A real deployment ensures the parent exists, removes the target, recreates it and copies
// every item in order, then verifies the copy. The first error aborts the target as is.
func (d *Deployer) Deploy(
	target domain.TargetDirectory,
	items []domain.SourceItem,
	dryRun bool,
	progress ports.DeployProgress,
) error {
	_, statErr := os.Lstat(target.Path)
	exists := statErr == nil

	if dryRun {
		if exists {
			progress.Replacing(target, true)
		}
		for _, item := range items {
			progress.ItemPlanned(item, destination(target, item))
		}
		return nil
	}

	parent := filepath.Dir(target.Path)
	if err := os.MkdirAll(parent, dirPerm); err != nil { //nolint:gosec // Host directories are world-readable
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", parent)
	}

	if exists {
		progress.Replacing(target, false)
	}
	if err := os.RemoveAll(target.Path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove previous installation"), "path", target.Path)
	}
	if err := os.MkdirAll(target.Path, dirPerm); err != nil { //nolint:gosec // Host directories are world-readable
		return zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", target.Path)
	}

	for _, item := range items {
		if err := d.copyItem(item, destination(target, item)); err != nil {
			return err
		}
		progress.ItemCopied(item, destination(target, item))
	}

	files, err := d.verifier.Verify(d.source, items, target.Path)
	if err != nil {
		return err
	}
	progress.Verified(target, files)

	return nil
}

// copyItem copies a directory recursively or a file byte-for-byte to dest.
func (d *Deployer) copyItem(item domain.SourceItem, dest string) error {
	if _, err := fs.Stat(d.source, string(item)); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "failed to stat source item"), "item", string(item))
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Join(domain.ErrSourceItemMissing, wrapped)
		}
		return wrapped
	}

	opts := cp.Options{
		FS: d.source,
		// Embedded sources are read-only; the owner must be able to replace the copy later.
		PermissionControl: cp.AddPermission(0o200),
		PreserveTimes:     false,
		PreserveOwner:     false,
	}
	if err := cp.Copy(string(item), dest, opts); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy item"), "item", string(item)), "path", dest)
	}
	return nil
}

// destination maps a slash separated item path below the target directory.
func destination(target domain.TargetDirectory, item domain.SourceItem) string {
	return filepath.Join(target.Path, filepath.FromSlash(string(item)))
}
