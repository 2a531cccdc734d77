package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Parse flags first so GOMAXPROCS logging follows --verbose.
	if flags, err := parseBuildFlags(commandArgs(os.Args)); err == nil {
		env.Logger = newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	}
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
	// in which case the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		env.Logger.Info().Msgf(format, args...)
	}))

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 1 {
		switch args[1] {
		case cmdHelp:
			runHelp(args[2:], env)
			return ExitSuccess
		case cmdVersion:
			printVersion(env)
			return ExitSuccess
		}
		if !isCommand(args[1]) && !strings.HasPrefix(args[1], "-") {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[1])
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	flags, err := parseBuildFlags(commandArgs(args))
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printBuildUsage(env.Stderr)
		return ExitUsage
	}
	if flags.version {
		printVersion(env)
		return ExitSuccess
	}

	env.Logger = newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runBuild(ctx, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func printVersion(env *Environment) {
	fmt.Fprintf(env.Stdout, "mdsite %s\n", Version)
}

// Command names.
const (
	cmdBuild   = "build"
	cmdHelp    = "help"
	cmdVersion = "version"
)

// isCommand reports whether arg names a subcommand. Case sensitive.
func isCommand(arg string) bool {
	switch arg {
	case cmdBuild, cmdHelp, cmdVersion:
		return true
	}
	return false
}

// commandArgs strips the program name and an optional "build" command.
func commandArgs(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	rest := args[1:]
	if len(rest) > 0 && rest[0] == cmdBuild {
		return rest[1:]
	}
	return rest
}
