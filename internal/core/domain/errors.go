package domain

import "go.trai.ch/zerr"

var (
	// ErrInstallFailed is returned when deploying the bundle into a destination fails.
	ErrInstallFailed = zerr.New("install failed")

	// ErrSourceItemMissing is returned when a bundle item is absent from the distribution root.
	ErrSourceItemMissing = zerr.New("source item missing")

	// ErrVerificationFailed is returned when a deployed file does not match its source.
	ErrVerificationFailed = zerr.New("deployed file does not match source")

	// ErrInvalidManifest is returned when the embedded bundle manifest is malformed.
	ErrInvalidManifest = zerr.New("invalid bundle manifest")
)
