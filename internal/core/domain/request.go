package domain

// Command is an installer operation named by the first argument.
type Command string

// CommandInstall deploys the bundle. It is the only supported command.
const CommandInstall Command = "install"

// InstallRequest is the validated outcome of parsing installer arguments.
// CustomDir, when set, overrides Target entirely.
type InstallRequest struct {
	Command   Command
	Target    TargetSelector
	CustomDir string
	DryRun    bool
	Help      bool
}

// NewInstallRequest returns a request carrying the defaults.
func NewInstallRequest() InstallRequest {
	return InstallRequest{Target: TargetBoth}
}
