package report_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/newsskill/internal/adapters/report"
	"go.trai.ch/newsskill/internal/core/domain"
)

func testBundle() *domain.Bundle {
	return &domain.Bundle{
		Name:           "demo-skill",
		Items:          []domain.SourceItem{"SKILL.md", "requirements.txt", "scripts"},
		DependencyFile: "requirements.txt",
		UsageHint:      "Use demo-skill to summarize today's news",
	}
}

func testTable() []domain.SelectorUsage {
	claude := domain.TargetDirectory{Selector: domain.TargetClaude, Host: "Claude Code", Path: "/home/u/.claude/skills/demo-skill"}
	opencode := domain.TargetDirectory{Selector: domain.TargetOpenCode, Host: "OpenCode", Path: "/home/u/.config/opencode/skill/demo-skill"}
	return []domain.SelectorUsage{
		{Selector: domain.TargetClaude, Targets: []domain.TargetDirectory{claude}},
		{Selector: domain.TargetOpenCode, Targets: []domain.TargetDirectory{opencode}},
		{Selector: domain.TargetBoth, Targets: []domain.TargetDirectory{claude, opencode}},
	}
}

func newRenderer() (r *report.Renderer, stdout, stderr *bytes.Buffer) {
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	return report.NewRenderer(stdout, stderr, termenv.Ascii), stdout, stderr
}

func TestRenderer_DeploymentProgress(t *testing.T) {
	r, stdout, stderr := newRenderer()
	target := domain.TargetDirectory{Selector: domain.TargetClaude, Host: "Claude Code", Path: "/home/u/.claude/skills/demo-skill"}

	r.Destination(target, false)
	r.Replacing(target, false)
	r.ItemCopied("SKILL.md", filepath.Join(target.Path, "SKILL.md"))
	r.ItemCopied("scripts", filepath.Join(target.Path, "scripts"))
	r.Verified(target, 4)

	assert.Equal(t, strings.Join([]string{
		"",
		"==> Claude Code /home/u/.claude/skills/demo-skill",
		"  ! replacing the existing installation",
		"  ✓ SKILL.md",
		"  ✓ scripts",
		"  ✓ verified 4 file(s)",
		"",
	}, "\n"), stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_DryRunPreview(t *testing.T) {
	r, stdout, _ := newRenderer()
	target := domain.TargetDirectory{Path: "/tmp/custom"}

	r.Destination(target, true)
	r.Replacing(target, true)
	r.ItemPlanned("SKILL.md", "/tmp/custom/SKILL.md")
	r.Summary(testBundle(), []domain.TargetDirectory{target}, true)

	out := stdout.String()
	assert.Contains(t, out, "==> Custom directory (dry run) /tmp/custom")
	assert.Contains(t, out, "  ! would replace the existing installation")
	assert.Contains(t, out, "  ~ would copy SKILL.md -> /tmp/custom/SKILL.md")
	assert.Contains(t, out, "No files were written.")
	assert.NotContains(t, out, "pip install")
}

func TestRenderer_Summary(t *testing.T) {
	r, stdout, _ := newRenderer()
	targets := []domain.TargetDirectory{
		{Path: filepath.FromSlash("/a/demo-skill")},
		{Path: filepath.FromSlash("/b/demo-skill")},
	}

	r.Summary(testBundle(), targets, false)

	out := stdout.String()
	assert.Contains(t, out, "Installed demo-skill to 2 location(s).")
	assert.Contains(t, out, "1. Install the Python dependencies:")
	assert.Contains(t, out, "pip install -r "+filepath.Join(targets[0].Path, "requirements.txt"))
	assert.Contains(t, out, "pip install -r "+filepath.Join(targets[1].Path, "requirements.txt"))
	assert.Contains(t, out, `2. Restart your assistant and ask:`)
	assert.Contains(t, out, `"Use demo-skill to summarize today's news"`)
}

func TestRenderer_SummaryWithoutDependencies(t *testing.T) {
	r, stdout, _ := newRenderer()
	bundle := testBundle()
	bundle.DependencyFile = ""

	r.Summary(bundle, []domain.TargetDirectory{{Path: "/a"}}, false)

	out := stdout.String()
	assert.NotContains(t, out, "pip install")
	assert.Contains(t, out, "1. Restart your assistant and ask:")
}

func TestRenderer_Usage(t *testing.T) {
	r, stdout, stderr := newRenderer()

	r.Usage(testBundle(), testTable())

	out := stdout.String()
	assert.Contains(t, out, "demo-skill installer")
	assert.Contains(t, out, "newsskill install [--target <claude|opencode|both>] [--dir <path>] [--dry-run]")
	assert.Contains(t, out, "(default: both)")
	assert.Contains(t, out, "  claude     /home/u/.claude/skills/demo-skill\n")
	assert.Contains(t, out, "  opencode   /home/u/.config/opencode/skill/demo-skill\n")
	assert.Contains(t, out, "  both       claude + opencode\n")
	assert.Contains(t, out, "replacing its contents")
	assert.Empty(t, stderr.String())
}

func TestRenderer_UsageError(t *testing.T) {
	r, stdout, stderr := newRenderer()

	r.UsageError(errors.New("unrecognized argument: --bogus"), testBundle(), testTable())

	assert.Empty(t, stdout.String())
	out := stderr.String()
	assert.True(t, strings.HasPrefix(out, "[error] unrecognized argument: --bogus\n"), out)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Targets:")
}
