package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-mdsite/internal/config"
)

const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG
	Content    string // MDSITE_CONTENT
	Static     string // MDSITE_STATIC
	Output     string // MDSITE_OUTPUT
	Template   string // MDSITE_TEMPLATE
	Style      string // MDSITE_STYLE
	AssetPath  string // MDSITE_ASSET_PATH
	BasePath   string // MDSITE_BASE_PATH
	Engine     string // MDSITE_ENGINE
	Timeout    string // MDSITE_TIMEOUT, checked by config.Validate
	PDF        *bool  // MDSITE_PDF, nil when unset or invalid
	Workers    *int   // MDSITE_WORKERS, nil when unset or invalid
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":     true,
	"MDSITE_CONTENT":    true,
	"MDSITE_STATIC":     true,
	"MDSITE_OUTPUT":     true,
	"MDSITE_TEMPLATE":   true,
	"MDSITE_STYLE":      true,
	"MDSITE_ASSET_PATH": true,
	"MDSITE_BASE_PATH":  true,
	"MDSITE_ENGINE":     true,
	"MDSITE_TIMEOUT":    true,
	"MDSITE_PDF":        true,
	"MDSITE_WORKERS":    true,
}

// loadEnvConfig reads MDSITE_* values from environ ("KEY=value" entries).
// Unknown names and unparsable values are logged as warnings and skipped.
func loadEnvConfig(environ []string, log zerolog.Logger) *envConfig {
	vars := make(map[string]string)
	for _, entry := range environ {
		name, value, _ := strings.Cut(entry, "=")
		if !strings.HasPrefix(name, envPrefix) {
			continue
		}
		if !knownEnvVars[name] {
			log.Warn().Str("var", name).Msg("unknown environment variable (typo?)")
			continue
		}
		vars[name] = value
	}

	cfg := &envConfig{
		ConfigPath: vars["MDSITE_CONFIG"],
		Content:    vars["MDSITE_CONTENT"],
		Static:     vars["MDSITE_STATIC"],
		Output:     vars["MDSITE_OUTPUT"],
		Template:   vars["MDSITE_TEMPLATE"],
		Style:      vars["MDSITE_STYLE"],
		AssetPath:  vars["MDSITE_ASSET_PATH"],
		BasePath:   vars["MDSITE_BASE_PATH"],
		Engine:     vars["MDSITE_ENGINE"],
		Timeout:    vars["MDSITE_TIMEOUT"],
	}

	if v := vars["MDSITE_PDF"]; v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.PDF = &b
		} else {
			log.Warn().Str("var", "MDSITE_PDF").Str("value", v).Msg("ignoring invalid boolean")
		}
	}

	if v := vars["MDSITE_WORKERS"]; v != "" {
		if w, err := strconv.Atoi(v); err == nil && w >= 0 {
			cfg.Workers = &w
		} else {
			log.Warn().Str("var", "MDSITE_WORKERS").Str("value", v).Msg("ignoring invalid worker count")
		}
	}

	return cfg
}

// applyEnvConfig overrides config file values with every variable that is set.
// CLI flags are applied afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Content, env.Content)
	setString(&cfg.Static, env.Static)
	setString(&cfg.Output, env.Output)
	setString(&cfg.Template, env.Template)
	setString(&cfg.Style, env.Style)
	setString(&cfg.Assets.BasePath, env.AssetPath)
	setString(&cfg.BasePath, env.BasePath)
	setString(&cfg.Engine, env.Engine)
	setString(&cfg.PDF.Timeout, env.Timeout)

	if env.PDF != nil {
		cfg.PDF.Enabled = *env.PDF
	}
	if env.Workers != nil {
		cfg.Workers = *env.Workers
	}
}

// setString assigns value to dst unless value is empty.
func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
