package main

import (
	"errors"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
	ExitContent = 5 // Markdown syntax error or page without a title
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdsite.ErrBrowserConnect) ||
		errors.Is(err, mdsite.ErrPageCreate) ||
		errors.Is(err, mdsite.ErrPageLoad) ||
		errors.Is(err, mdsite.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Content errors (exit 5)
	if errors.Is(err, mdsite.ErrUnterminatedDelimiter) ||
		errors.Is(err, mdsite.ErrNoHeadingFound) ||
		errors.Is(err, mdsite.ErrEmptyMarkdown) ||
		errors.Is(err, mdsite.ErrMissingChildren) {
		return ExitContent
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdsite.ErrInvalidEngine) ||
		errors.Is(err, mdsite.ErrInvalidAssetPath) ||
		errors.Is(err, mdsite.ErrStyleNotFound) ||
		errors.Is(err, mdsite.ErrTemplateNotFound) ||
		errors.Is(err, mdsite.ErrTemplateEmpty) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrUnsafeOutput) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrReadPage) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrCopyStatic) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdsite.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, mdsite.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, mdsite.ErrUnterminatedDelimiter):
		return hints.ForMarkdownSyntax()
	case errors.Is(err, mdsite.ErrNoHeadingFound):
		return hints.ForMissingTitle()
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames())
	case errors.Is(err, mdsite.ErrTemplateNotFound):
		return hints.ForTemplateNotFound()
	case errors.Is(err, ErrUnsafeOutput):
		return hints.ForUnsafeOutput()
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	}
	return ""
}
