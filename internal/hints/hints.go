// Package hints provides actionable error hints for common build failures.
// Hints are formatted as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// IsInContainer detects Docker and similar runtimes through /.dockerenv.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for headless Chrome launch errors during
// PDF export, tuned to CI and container environments.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "or build without --pdf")

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the PDF timeout.
func ForTimeout() string {
	return format("for large pages, raise --timeout")
}

// ForConfigNotFound suggests --config, or creating the user config file
// when one of the searched paths is in the go-mdsite config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-mdsite/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutput explains why an output directory was not removed.
func ForUnsafeOutput() string {
	return format("the output directory is deleted on every build; point --output at a dedicated directory")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", or a path to a .css file")
}

// ForTemplateNotFound explains how templates are resolved.
func ForTemplateNotFound() string {
	return format("use a path to an .html file containing {{ Title }} and {{ Content }}")
}

// ForMarkdownSyntax explains the unterminated delimiter rule.
func ForMarkdownSyntax() string {
	return format("every **, _ and ` must be closed in the same block; use --engine goldmark for full CommonMark")
}

// ForMissingTitle explains where the page title comes from.
func ForMissingTitle() string {
	return format(`start a line with "# " to give the page a title`)
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
