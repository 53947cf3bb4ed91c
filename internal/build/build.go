// Package build holds build-time information.
package build

// Program is the installed binary name shown in help text.
const Program = "newsskill"

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"
