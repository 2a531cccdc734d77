package mdsite

import (
	"fmt"
	"strings"
	"time"
)

// Engine selects the Markdown to HTML renderer.
type Engine string

// Supported engines.
const (
	EngineBuiltin  Engine = "builtin"
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine maps a config or flag value to an Engine, case-insensitively.
// An empty value selects EngineBuiltin.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineBuiltin:
		return EngineBuiltin, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, s, EngineBuiltin, EngineGoldmark)
	}
}

// defaultTimeout bounds a single PDF render.
const defaultTimeout = 30 * time.Second

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	engine    Engine
	template  string // asset name or file path
	style     string // asset name or file path
	assetPath string
	basePath  string
	pdf       bool
	timeout   time.Duration
}

// WithEngine selects the Markdown engine. Default: EngineBuiltin.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithTemplate sets the page template, as an asset name or a path to an
// HTML file. Default: the embedded "page" template.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.template = nameOrPath
	}
}

// WithStyle sets the stylesheet injected into every page, as an asset name
// or a path to a CSS file. Default: no stylesheet.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.style = nameOrPath
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithBasePath sets the deployment base path. Site-rooted links become
// "/" + basename(basePath) + link.
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithPDF also renders each page to PDF with headless Chrome.
func WithPDF(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.pdf = enabled
	}
}

// WithTimeout sets the PDF render timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}
