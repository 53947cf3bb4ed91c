package config_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/newsskill"
	"go.trai.ch/newsskill/internal/adapters/config"
	"go.trai.ch/newsskill/internal/core/domain"
)

func TestLoad_EmbeddedManifest(t *testing.T) {
	loader := config.NewLoader(newsskill.Manifest(), newsskill.ManifestFile)

	bundle, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "news-aggregator-skill", bundle.Name)
	assert.Equal(t, []domain.SourceItem{
		"SKILL.md",
		"templates.md",
		"requirements.txt",
		"scripts",
		"README.md",
	}, bundle.Items)
	assert.Equal(t, domain.SourceItem("requirements.txt"), bundle.DependencyFile)
	assert.NotEmpty(t, bundle.UsageHint)

	// Every manifest item must ship in the embedded distribution root.
	for _, item := range bundle.Items {
		_, err := fs.Stat(newsskill.Source(), string(item))
		assert.NoError(t, err, "item %s", item)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	loader := config.NewLoader(fstest.MapFS{}, "skill.yaml")

	_, err := loader.Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read bundle manifest")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name: "valid",
			content: `
name: demo
items: [SKILL.md, scripts]
dependencies: SKILL.md
`,
		},
		{
			name:        "malformed yaml",
			content:     "name: [unterminated",
			errContains: "failed to parse bundle manifest",
		},
		{
			name:        "missing name",
			content:     "items: [SKILL.md]",
			errContains: "bundle name must be a single path segment",
		},
		{
			name:        "nested name",
			content:     "name: a/b\nitems: [SKILL.md]",
			errContains: "bundle name must be a single path segment",
		},
		{
			name:        "no items",
			content:     "name: demo",
			errContains: "bundle has no items",
		},
		{
			name:        "absolute item",
			content:     "name: demo\nitems: [/etc/passwd]",
			errContains: "item is not a clean relative path",
		},
		{
			name:        "parent item",
			content:     "name: demo\nitems: [../outside]",
			errContains: "item is not a clean relative path",
		},
		{
			name:        "dot item",
			content:     "name: demo\nitems: [.]",
			errContains: "item is not a clean relative path",
		},
		{
			name:        "duplicate item",
			content:     "name: demo\nitems: [SKILL.md, SKILL.md]",
			errContains: "duplicate item",
		},
		{
			name:        "dependency outside items",
			content:     "name: demo\nitems: [SKILL.md]\ndependencies: requirements.txt",
			errContains: "dependency file is not a bundle item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := config.Parse([]byte(tt.content))
			if tt.errContains == "" {
				require.NoError(t, err)
				assert.Equal(t, "demo", bundle.Name)
				assert.Equal(t, []domain.SourceItem{"SKILL.md", "scripts"}, bundle.Items)
				return
			}

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
			if tt.name != "malformed yaml" {
				assert.ErrorIs(t, err, domain.ErrInvalidManifest)
			}
		})
	}
}
