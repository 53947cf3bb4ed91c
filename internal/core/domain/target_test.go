package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/newsskill/internal/core/domain"
)

func TestTargetSelector_Set(t *testing.T) {
	for _, selector := range domain.TargetSelectors() {
		t.Run(string(selector), func(t *testing.T) {
			var s domain.TargetSelector
			require.NoError(t, s.Set(string(selector)))
			assert.Equal(t, selector, s)
			assert.True(t, s.Valid())
			assert.Equal(t, string(selector), s.String())
		})
	}
}

func TestTargetSelector_SetRejectsUnknown(t *testing.T) {
	s := domain.TargetBoth

	err := s.Set("vscode")
	require.Error(t, err)
	assert.ErrorContains(t, err, "expected one of claude|opencode|cursor|both|all")
	// The previous value is kept.
	assert.Equal(t, domain.TargetBoth, s)
}

func TestTargetSelector_Valid(t *testing.T) {
	assert.False(t, domain.TargetSelector("").Valid())
	assert.False(t, domain.TargetSelector("Claude").Valid())
}

func TestNewInstallRequest(t *testing.T) {
	req := domain.NewInstallRequest()

	assert.Equal(t, domain.TargetBoth, req.Target)
	assert.Empty(t, req.CustomDir)
	assert.False(t, req.DryRun)
	assert.False(t, req.Help)
}

func TestUsageError(t *testing.T) {
	err := domain.NewUsageError("unrecognized argument: %s", "--bogus")

	assert.EqualError(t, err, "unrecognized argument: --bogus")
}
