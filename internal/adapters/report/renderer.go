// Package report renders installer progress, help text and post-install guidance.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/newsskill/internal/build"
	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/ui/output"
	"go.trai.ch/newsskill/internal/ui/style"
)

const customLabel = "Custom directory"

// Renderer implements ports.Reporter.
// Progress, summaries and help go to stdout; usage errors go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer

	header lipgloss.Style
	faint  lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
}

// NewRenderer creates a Renderer that styles output with the given profile.
func NewRenderer(stdout, stderr io.Writer, profile termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	out := output.NewRenderer(stdout, profile)
	errOut := output.NewRenderer(stderr, profile)

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		header: out.NewStyle().Bold(true).Foreground(style.Iris),
		faint:  out.NewStyle().Foreground(style.Slate),
		ok:     out.NewStyle().Foreground(style.Green),
		warn:   out.NewStyle().Foreground(style.Yellow),
		fail:   errOut.NewStyle().Bold(true).Foreground(style.Red),
	}
}

// Destination prints the header that precedes the events of one destination.
func (r *Renderer) Destination(target domain.TargetDirectory, dryRun bool) {
	label := target.Host
	if label == "" {
		label = customLabel
	}
	if dryRun {
		label += " (dry run)"
	}

	r.printf(r.stdout, "\n%s %s\n", r.header.Render(style.Arrow+" "+label), target.Path)
}

// ItemPlanned prints a dry-run preview line.
func (r *Renderer) ItemPlanned(item domain.SourceItem, dest string) {
	r.printf(r.stdout, "  %s would copy %s -> %s\n", r.faint.Render(style.Tilde), item, dest)
}

// Replacing prints a notice about an existing installation.
func (r *Renderer) Replacing(_ domain.TargetDirectory, dryRun bool) {
	if dryRun {
		r.printf(r.stdout, "  %s would replace the existing installation\n", r.warn.Render(style.Warning))
		return
	}
	r.printf(r.stdout, "  %s replacing the existing installation\n", r.warn.Render(style.Warning))
}

// ItemCopied prints one copied item.
func (r *Renderer) ItemCopied(item domain.SourceItem, _ string) {
	r.printf(r.stdout, "  %s %s\n", r.ok.Render(style.Check), item)
}

// Verified prints the number of files whose content matched the source.
func (r *Renderer) Verified(_ domain.TargetDirectory, files int) {
	r.printf(r.stdout, "  %s verified %d file(s)\n", r.ok.Render(style.Check), files)
}

// Summary prints the closing guidance of a run.
func (r *Renderer) Summary(bundle *domain.Bundle, targets []domain.TargetDirectory, dryRun bool) {
	if dryRun {
		r.printf(r.stdout, "\n%s\n", r.header.Render("Dry run complete. No files were written."))
		return
	}

	r.printf(r.stdout, "\n%s\n", r.header.Render(fmt.Sprintf("Installed %s to %d location(s).", bundle.Name, len(targets))))

	step := 1
	r.printf(r.stdout, "\nNext steps:\n")
	if bundle.DependencyFile != "" {
		r.printf(r.stdout, "  %d. Install the Python dependencies:\n", step)
		for _, target := range targets {
			file := filepath.Join(target.Path, filepath.FromSlash(string(bundle.DependencyFile)))
			r.printf(r.stdout, "       pip install -r %s\n", file)
		}
		step++
	}
	if bundle.UsageHint != "" {
		r.printf(r.stdout, "  %d. Restart your assistant and ask:\n", step)
		r.printf(r.stdout, "       %q\n", bundle.UsageHint)
	}
}

// Usage prints the help text to stdout.
func (r *Renderer) Usage(bundle *domain.Bundle, table []domain.SelectorUsage) {
	r.printf(r.stdout, "%s", r.usage(bundle, table))
}

// UsageError prints err and the help text to stderr.
func (r *Renderer) UsageError(err error, bundle *domain.Bundle, table []domain.SelectorUsage) {
	r.printf(r.stderr, "%s %s\n\n", r.fail.Render("[error]"), err.Error())
	r.printf(r.stderr, "%s", r.usage(bundle, table))
}

func (r *Renderer) usage(bundle *domain.Bundle, table []domain.SelectorUsage) string {
	var b strings.Builder
	program := build.Program

	fmt.Fprintf(&b, "%s installer (%s)\n\n", bundle.Name, build.Version)
	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  %s install [--target <%s>] [--dir <path>] [--dry-run]\n", program, selectorNames(table))
	fmt.Fprintf(&b, "  %s --help\n\n", program)

	b.WriteString("Options:\n")
	fmt.Fprintf(&b, "  --target <name>  Where to install (default: %s)\n", domain.NewInstallRequest().Target)
	b.WriteString("  --dir <path>     Install into a custom directory, replacing its contents; overrides --target\n")
	b.WriteString("  --dry-run        Show what would be copied without writing files\n")
	b.WriteString("  -h, --help       Show this help\n")

	if len(table) == 0 {
		return b.String()
	}

	b.WriteString("\nTargets:\n")
	for _, entry := range table {
		fmt.Fprintf(&b, "  %-10s %s\n", entry.Selector, describe(entry))
	}
	return b.String()
}

// describe shows the path of a single-host selector and the member hosts of a composite one.
func describe(entry domain.SelectorUsage) string {
	if len(entry.Targets) == 1 {
		return entry.Targets[0].Path
	}

	members := make([]string, 0, len(entry.Targets))
	for _, target := range entry.Targets {
		members = append(members, string(target.Selector))
	}
	return strings.Join(members, " + ")
}

func selectorNames(table []domain.SelectorUsage) string {
	names := make([]string, 0, len(table))
	for _, entry := range table {
		names = append(names, string(entry.Selector))
	}
	return strings.Join(names, "|")
}

func (r *Renderer) printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
