package ports

import (
	"io/fs"

	"go.trai.ch/newsskill/internal/core/domain"
)

// Verifier defines the interface for checking a deployed bundle against its source.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// Verify compares every file below items in source with the copy under root.
	// It returns the number of files checked.
	Verify(source fs.FS, items []domain.SourceItem, root string) (int, error)
}
