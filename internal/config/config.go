// Package config loads and validates the site configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "site"

// appDir is the directory under the user config dir searched for configs.
const appDir = "go-mdsite"

// Engine names.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// Field limits.
const (
	MaxPathLength     = 4096
	MaxBasePathLength = 2048
	MaxStyleLength    = 4096 // a name or a CSS file path
	MaxWorkers        = 64
	MaxPDFTimeout     = 10 * time.Minute
)

// Defaults applied by DefaultConfig.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultPDFTimeout = "30s"
)

// Config holds the site build configuration.
type Config struct {
	Content  string       `yaml:"content"`  // markdown tree
	Static   string       `yaml:"static"`   // copied to <output>/static
	Output   string       `yaml:"output"`   // recreated on every build
	Template string       `yaml:"template"` // template file path or asset name
	BasePath string       `yaml:"basePath"` // deployment path, e.g. /repo
	Engine   string       `yaml:"engine"`   // builtin | goldmark
	Style    string       `yaml:"style"`    // asset name or CSS path; empty = none
	Assets   AssetsConfig `yaml:"assets"`
	PDF      PDFConfig    `yaml:"pdf"`
	Workers  int          `yaml:"workers"` // 0 = auto
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// PDFConfig enables PDF export next to every generated page.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s"
}

// TimeoutDuration parses Timeout. An empty value yields zero.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout %q: %v", ErrInvalidValue, p.Timeout, err)
	}
	return d, nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Content: DefaultContentDir,
		Static:  DefaultStaticDir,
		Output:  DefaultOutputDir,
		Engine:  EngineBuiltin,
		PDF:     PDFConfig{Timeout: DefaultPDFTimeout},
	}
}

// Validate checks field lengths and enumerated values.
// LoadConfig calls it; callers building a Config by hand should too.
func (c *Config) Validate() error {
	paths := []struct {
		field, value string
		max          int
	}{
		{"content", c.Content, MaxPathLength},
		{"static", c.Static, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"basePath", c.BasePath, MaxBasePathLength},
		{"style", c.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, p.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Engine) {
	case "", EngineBuiltin, EngineGoldmark:
	default:
		return fmt.Errorf("%w: engine %q (must be %s or %s)", ErrInvalidValue, c.Engine, EngineBuiltin, EngineGoldmark)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	timeout, err := c.PDF.TimeoutDuration()
	if err != nil {
		return err
	}
	if timeout < 0 || timeout > MaxPDFTimeout {
		return fmt.Errorf("%w: pdf.timeout must be between 0 and %s, got %s", ErrInvalidValue, MaxPDFTimeout, timeout)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path. Anything else is a
// name searched in the current directory, then the user config directory.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files tried for a config name, in order: .yaml then
// .yml in the current directory, then in the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
