package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the site (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help build' for the build flags.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [build] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every file under the content directory into an HTML page,")
	fmt.Fprintln(w, "copy the static directory, and write the site to the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "      --content <dir>       Markdown content (default: content)")
	fmt.Fprintln(w, "      --static <dir>        Static files (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, deleted first (default: public)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: site)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --template <s>        Template name or .html path ({{ Title }}, {{ Content }})")
	fmt.Fprintln(w, "      --base-path <path>    Deployment base path for site-rooted links")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: builtin, goldmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name or .css path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF next to every page")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF timeout per page (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every copied file and page")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT, MDSITE_STATIC, MDSITE_OUTPUT,")
	fmt.Fprintln(w, "  MDSITE_TEMPLATE, MDSITE_STYLE, MDSITE_ASSET_PATH, MDSITE_BASE_PATH,")
	fmt.Fprintln(w, "  MDSITE_ENGINE, MDSITE_PDF, MDSITE_TIMEOUT, MDSITE_WORKERS")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdBuild:
		printBuildUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
