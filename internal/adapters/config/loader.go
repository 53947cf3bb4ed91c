// Package config provides the loader for the bundle manifest.
package config

import (
	"errors"
	"io/fs"
	"path"

	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader reading a YAML manifest from a filesystem.
type Loader struct {
	FS       fs.FS
	Filename string
}

// NewLoader creates a Loader for the manifest named filename inside fsys.
func NewLoader(fsys fs.FS, filename string) *Loader {
	return &Loader{FS: fsys, Filename: filename}
}

// Load reads and validates the manifest.
func (l *Loader) Load() (*domain.Bundle, error) {
	data, err := fs.ReadFile(l.FS, l.Filename)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read bundle manifest"), "file", l.Filename)
	}
	return Parse(data)
}

// Parse decodes manifest data into a domain.Bundle.
func Parse(data []byte) (*domain.Bundle, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse bundle manifest")
	}

	if manifest.Name == "" || !isSegment(manifest.Name) {
		return nil, invalid(zerr.With(zerr.New("bundle name must be a single path segment"), "name", manifest.Name))
	}
	if len(manifest.Items) == 0 {
		return nil, invalid(zerr.New("bundle has no items"))
	}

	seen := make(map[string]bool, len(manifest.Items))
	items := make([]domain.SourceItem, 0, len(manifest.Items))
	for _, item := range manifest.Items {
		// Items are fs.FS paths: slash separated, relative and already clean.
		if !fs.ValidPath(item) || item == "." || path.Clean(item) != item {
			return nil, invalid(zerr.With(zerr.New("item is not a clean relative path"), "item", item))
		}
		if seen[item] {
			return nil, invalid(zerr.With(zerr.New("duplicate item"), "item", item))
		}
		seen[item] = true
		items = append(items, domain.SourceItem(item))
	}

	if manifest.Dependencies != "" && !seen[manifest.Dependencies] {
		return nil, invalid(zerr.With(zerr.New("dependency file is not a bundle item"),
			"dependencies", manifest.Dependencies))
	}

	return &domain.Bundle{
		Name:           manifest.Name,
		Items:          items,
		DependencyFile: domain.SourceItem(manifest.Dependencies),
		UsageHint:      manifest.Usage,
	}, nil
}

func invalid(err error) error {
	return errors.Join(domain.ErrInvalidManifest, err)
}

// isSegment reports whether name can be used as a single directory name.
func isSegment(name string) bool {
	return fs.ValidPath(name) && name != "." && path.Base(name) == name
}
