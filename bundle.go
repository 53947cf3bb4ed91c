// Package newsskill holds the news-aggregator-skill bundle that the installer deploys.
package newsskill

import (
	"embed"
	"io/fs"
)

// ManifestFile is the name of the embedded bundle manifest.
const ManifestFile = "skill.yaml"

//go:embed skill.yaml
var manifest embed.FS

//go:embed all:skill
var files embed.FS

// Manifest returns the filesystem holding the bundle manifest.
func Manifest() fs.FS {
	return manifest
}

// Source returns the distribution root of the bundle. Source item paths are relative to it.
func Source() fs.FS {
	sub, err := fs.Sub(files, "skill")
	if err != nil {
		// "skill" is a valid path and embedded at compile time.
		panic(err)
	}
	return sub
}
