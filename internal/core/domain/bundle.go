package domain

// SourceItem is a file or directory of the bundle, relative to the distribution root.
type SourceItem string

// Bundle describes the skill that is deployed. It is resolved once at start and never mutated.
type Bundle struct {
	// Name is the directory name the bundle gets inside every host directory.
	Name string
	// Items is the ordered list of paths copied into each destination.
	Items []SourceItem
	// DependencyFile is the item declaring the bundle's Python dependencies.
	DependencyFile SourceItem
	// UsageHint is an example prompt that invokes the skill inside a host.
	UsageHint string
}
