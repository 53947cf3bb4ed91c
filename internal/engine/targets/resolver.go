// Package targets maps target selectors and custom directories to destination paths.
package targets

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/zerr"
)

// host describes where one application looks for skills.
type host struct {
	selector domain.TargetSelector
	label    string
	// base builds the parent directory of the installed bundle.
	base func(r *Resolver) string
}

var (
	claude = host{
		selector: domain.TargetClaude,
		label:    "Claude Code",
		base:     func(r *Resolver) string { return filepath.Join(r.home, ".claude", "skills") },
	}
	opencode = host{
		selector: domain.TargetOpenCode,
		label:    "OpenCode",
		base:     func(r *Resolver) string { return filepath.Join(r.configHome, "opencode", "skill") },
	}
	cursor = host{
		selector: domain.TargetCursor,
		label:    "Cursor",
		base:     func(r *Resolver) string { return filepath.Join(r.home, ".cursor", "skills") },
	}
)

// selectorHosts maps every selector to its hosts in installation order.
var selectorHosts = map[domain.TargetSelector][]host{
	domain.TargetClaude:   {claude},
	domain.TargetOpenCode: {opencode},
	domain.TargetCursor:   {cursor},
	domain.TargetBoth:     {claude, opencode},
	domain.TargetAll:      {claude, opencode, cursor},
}

// Resolver computes destination directories from a fixed host table.
type Resolver struct {
	home       string
	configHome string
	name       string
}

// NewResolver creates a Resolver.
// home is the user's home directory, configHome the XDG config directory,
// and name the bundle directory created below each host's skill root.
func NewResolver(home, configHome, name string) *Resolver {
	return &Resolver{
		home:       home,
		configHome: configHome,
		name:       name,
	}
}

// Resolve returns the ordered destinations for a request.
// A non-empty customDir wins over the selector and yields a single destination.
// Unknown selectors fall back to both.
func (r *Resolver) Resolve(selector domain.TargetSelector, customDir string) ([]domain.TargetDirectory, error) {
	if customDir != "" {
		path, err := r.absolute(customDir)
		if err != nil {
			return nil, err
		}
		return []domain.TargetDirectory{{Path: path}}, nil
	}

	hosts, ok := selectorHosts[selector]
	if !ok {
		hosts = selectorHosts[domain.TargetBoth]
	}

	targets := make([]domain.TargetDirectory, 0, len(hosts))
	for _, h := range hosts {
		path, err := filepath.Abs(filepath.Join(h.base(r), r.name))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve target directory"), "target", string(h.selector))
		}
		targets = append(targets, domain.TargetDirectory{
			Selector: h.selector,
			Host:     h.label,
			Path:     path,
		})
	}
	return targets, nil
}

// Table lists the destinations of every selector in display order.
func (r *Resolver) Table() []domain.SelectorUsage {
	table := make([]domain.SelectorUsage, 0, len(selectorHosts))
	for _, selector := range domain.TargetSelectors() {
		targets, err := r.Resolve(selector, "")
		if err != nil {
			continue
		}
		table = append(table, domain.SelectorUsage{Selector: selector, Targets: targets})
	}
	return table
}

// ConfigHome returns the directory OpenCode reads its configuration from:
// $XDG_CONFIG_HOME when it is set to an absolute path, otherwise <home>/.config.
// OpenCode uses this layout on every platform, including macOS and Windows.
func ConfigHome(home string) string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(home, ".config")
}

// absolute expands a leading "~" segment and makes path absolute.
// "~user" forms are kept literally. The home directory and the filesystem root are
// refused because installing replaces the destination's whole content.
func (r *Resolver) absolute(path string) (string, error) {
	switch {
	case path == "~":
		path = r.home
	case strings.HasPrefix(path, "~/"), strings.HasPrefix(path, "~"+string(filepath.Separator)):
		path = filepath.Join(r.home, path[2:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve custom directory"), "path", path)
	}
	if abs == filepath.Clean(r.home) || filepath.Dir(abs) == abs {
		return "", domain.NewUsageError("refusing to install into %s: its contents would be replaced", abs)
	}
	return abs, nil
}
