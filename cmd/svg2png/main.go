package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// With no arguments it converts the logo next to the executable.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := splitCommand(args)

	switch cmd {
	case "convert":
		return runConvertCmd(ctx, rest, env)
	case "preview":
		return runPreviewCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "svg2png %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// splitCommand returns the command name and its arguments.
// Bare flags (or nothing at all) select convert.
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return "convert", nil
	}
	first := args[1]
	if strings.HasPrefix(first, "-") {
		return "convert", args[1:]
	}
	return first, args[2:]
}
