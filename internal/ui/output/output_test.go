package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/newsskill/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	// NO_COLOR forces the Ascii profile.
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r := output.NewRenderer(&buf, termenv.TrueColor)
	assert.Equal(t, termenv.TrueColor, r.ColorProfile())

	plain := output.NewRenderer(&buf, termenv.Ascii)
	assert.Equal(t, "text", plain.NewStyle().Bold(true).Render("text"))
}

func TestNewRenderer_NilWriter(t *testing.T) {
	r := output.NewRenderer(nil, termenv.Ascii)
	assert.NotNil(t, r)
}
