package domain

import (
	"fmt"
	"strings"
)

// TargetSelector chooses which host directory conventions receive the bundle.
type TargetSelector string

// Supported target selectors.
const (
	TargetClaude   TargetSelector = "claude"
	TargetOpenCode TargetSelector = "opencode"
	TargetCursor   TargetSelector = "cursor"
	TargetBoth     TargetSelector = "both"
	TargetAll      TargetSelector = "all"
)

// TargetSelectors returns every selector in display order.
func TargetSelectors() []TargetSelector {
	return []TargetSelector{TargetClaude, TargetOpenCode, TargetCursor, TargetBoth, TargetAll}
}

// Valid reports whether s is a member of the closed selector set.
func (s TargetSelector) Valid() bool {
	for _, known := range TargetSelectors() {
		if s == known {
			return true
		}
	}
	return false
}

// String implements pflag.Value.
func (s *TargetSelector) String() string {
	return string(*s)
}

// Set implements pflag.Value and rejects anything outside the selector set.
func (s *TargetSelector) Set(value string) error {
	candidate := TargetSelector(value)
	if !candidate.Valid() {
		return fmt.Errorf("expected one of %s", selectorList())
	}
	*s = candidate
	return nil
}

// Type implements pflag.Value.
func (s *TargetSelector) Type() string {
	return "target"
}

func selectorList() string {
	names := make([]string, 0, len(TargetSelectors()))
	for _, s := range TargetSelectors() {
		names = append(names, string(s))
	}
	return strings.Join(names, "|")
}

// TargetDirectory is an absolute directory that receives one copy of the bundle.
// Selector and Host name the owning application and are empty for custom directories.
type TargetDirectory struct {
	Selector TargetSelector
	Host     string
	Path     string
}

// SelectorUsage lists the destinations a selector resolves to, for help output.
type SelectorUsage struct {
	Selector TargetSelector
	Targets  []TargetDirectory
}
