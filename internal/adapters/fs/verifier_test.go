package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/newsskill/internal/adapters/fs"
	"go.trai.ch/newsskill/internal/core/domain"
)

// materialize writes the source files below root.
func materialize(t *testing.T, root string) {
	t.Helper()
	for name, file := range sourceFS() {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, file.Data, 0o600))
	}
}

func TestVerifier_Verify(t *testing.T) {
	root := t.TempDir()
	materialize(t, root)
	verifier := fs.NewVerifier(fs.NewWalker(), fs.NewHasher())

	items := []domain.SourceItem{"SKILL.md", "scripts", "README.md"}
	count, err := verifier.Verify(sourceFS(), items, root)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestVerifier_Verify_ContentMismatch(t *testing.T) {
	root := t.TempDir()
	materialize(t, root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "scripts", "lib", "util.py"), []byte("tampered"), 0o600))
	verifier := fs.NewVerifier(fs.NewWalker(), fs.NewHasher())

	_, err := verifier.Verify(sourceFS(), []domain.SourceItem{"scripts"}, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVerificationFailed)
	assert.ErrorContains(t, err, "content hash differs")
}

func TestVerifier_Verify_MissingCopy(t *testing.T) {
	root := t.TempDir()
	materialize(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, "README.md")))
	verifier := fs.NewVerifier(fs.NewWalker(), fs.NewHasher())

	count, err := verifier.Verify(sourceFS(), []domain.SourceItem{"SKILL.md", "README.md"}, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVerificationFailed)
	assert.Equal(t, 1, count)
}

func TestVerifier_Verify_MissingSource(t *testing.T) {
	verifier := fs.NewVerifier(fs.NewWalker(), fs.NewHasher())

	_, err := verifier.Verify(sourceFS(), []domain.SourceItem{"docs"}, t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to walk source item")
}
