package commands

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/newsskill/internal/build"
	"go.trai.ch/newsskill/internal/core/domain"
)

// Parse turns raw installer arguments into a validated request.
// The first token is the command and every later token must be a flag.
// Flags are consumed strictly left to right and the first malformed one is reported.
func Parse(tokens []string) (domain.InstallRequest, error) {
	req := domain.NewInstallRequest()

	if len(tokens) == 0 || isHelp(tokens[0]) {
		req.Help = true
		return req, nil
	}

	req.Command = domain.Command(tokens[0])

	flags := pflag.NewFlagSet(build.Program, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	// Stop at the first positional token so it can be reported before any later flag.
	flags.SetInterspersed(false)
	flags.Var(&req.Target, "target", "Where to install")
	flags.StringVar(&req.CustomDir, "dir", "", "Install into a custom directory")
	flags.BoolVar(&req.DryRun, "dry-run", false, "Show what would be copied")
	flags.BoolVarP(&req.Help, "help", "h", false, "Show help")

	args := tokens[1:]
	if i := malformedSwitch(args); i >= 0 {
		// Earlier tokens still get the chance to fail first.
		if err := flags.Parse(args[:i]); err != nil {
			return domain.InstallRequest{}, domain.NewUsageError("%s", err.Error())
		}
		return domain.InstallRequest{}, domain.NewUsageError("unrecognized argument: %s", args[i])
	}

	if err := flags.Parse(args); err != nil {
		return domain.InstallRequest{}, domain.NewUsageError("%s", err.Error())
	}

	if flags.ArgsLenAtDash() == 0 {
		return domain.InstallRequest{}, domain.NewUsageError("unrecognized argument: --")
	}
	if rest := flags.Args(); len(rest) > 0 {
		return domain.InstallRequest{}, domain.NewUsageError("unrecognized argument: %s", rest[0])
	}

	if !req.Help && req.Command != domain.CommandInstall {
		return domain.InstallRequest{}, domain.NewUsageError("unsupported command: %s", req.Command)
	}

	return req, nil
}

func isHelp(token string) bool {
	return token == "--help" || token == "-h"
}

// malformedSwitch returns the index of the first switch that pflag would accept
// but the installer does not: a value attached to --help or --dry-run, or -h
// bundled with anything else. It returns -1 when scanning reaches a token pflag
// reports on its own.
func malformedSwitch(args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--target" || arg == "--dir":
			i++ // value
		case isHelp(arg) || arg == "--dry-run":
		case strings.HasPrefix(arg, "--target=") || strings.HasPrefix(arg, "--dir="):
		case strings.HasPrefix(arg, "--help="), strings.HasPrefix(arg, "--dry-run="), strings.HasPrefix(arg, "-h"):
			return i
		default:
			return -1
		}
	}
	return -1
}
