package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the content, static and output directories.
type siteFlags struct {
	content string
	static  string
	output  string
}

// assetFlags holds template and stylesheet flags.
type assetFlags struct {
	template  string // name or path
	style     string // name or path
	assetPath string // override asset directory
	noStyle   bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	site     siteFlags
	assets   assetFlags
	basePath string
	engine   string
	pdf      bool
	workers  int
	timeout  string
	version  bool

	// changed reports whether a flag was set on the command line, so that
	// explicit zero values still override the config.
	changed func(name string) bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every copied file and page")
}

func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "markdown content directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (recreated)")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// parseBuildFlags parses build flags. Positional arguments are rejected.
func parseBuildFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet(cmdBuild, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addAssetFlags(fs, &f.assets)

	fs.StringVar(&f.basePath, "base-path", "", "deployment base path, e.g. /repo")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: builtin, goldmark")
	fs.BoolVar(&f.pdf, "pdf", false, "also export every page to PDF")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF timeout per page (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(fs.Args(), " "))
	}

	f.changed = fs.Changed
	return f, nil
}
