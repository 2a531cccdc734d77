package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for build operations.
var (
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrUnsafeOutput   = errors.New("refusing to delete output directory")
	ErrCopyStatic     = errors.New("failed to copy static files")
)

// staticDirName is the output subdirectory receiving the static tree.
const staticDirName = "static"

// runBuild builds the whole site.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) error {
	log := env.Logger
	start := env.Now()

	cfg, err := loadSiteConfig(flags, env)
	if err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Content, cfg.Output)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	pool := mdsite.NewConverterPool(mdsite.ResolvePoolSize(cfg.Workers), converterOptions(cfg)...)
	defer func() {
		if err := pool.Close(); err != nil {
			log.Warn().Err(err).Msg("closing converters")
		}
	}()

	// Build one converter up front so asset errors fail before the
	// output directory is touched.
	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	pool.Release(conv)

	if err := prepareOutput(cfg); err != nil {
		return err
	}
	if err := copyStatic(cfg.Static, filepath.Join(cfg.Output, staticDirName), log); err != nil {
		return err
	}

	if len(pages) == 0 {
		log.Warn().Str("dir", cfg.Content).Msg("no content files found")
		return nil
	}
	log.Info().Int("pages", len(pages)).Int("workers", pool.Size()).Msg("Building site")

	results := buildBatch(ctx, &poolAdapter{pool: pool}, pages, log)
	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d of %d pages failed: %w", failed, len(results), firstError(results))
	}
	log.Info().Dur("elapsed", env.Now().Sub(start)).Str("output", cfg.Output).Msg("Site built")
	return nil
}

// loadSiteConfig resolves the configuration.
// Precedence: defaults < config file < MDSITE_* variables < flags.
func loadSiteConfig(flags *buildFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Environ(), env.Logger)

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg, err := loadConfigFile(name, env.Logger)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile loads name, which must exist when given. Without a name
// the default config is used if present, and built-in defaults otherwise.
func loadConfigFile(name string, log zerolog.Logger) (*config.Config, error) {
	required := name != ""
	if !required {
		name = config.DefaultName
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if !required && errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log.Info().Str("config", name).Msg("Loaded config")
	return cfg, nil
}

// mergeFlags applies flags set on the command line. Flags win.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	stringFlags := []struct {
		name  string
		value string
		dst   *string
	}{
		{"content", flags.site.content, &cfg.Content},
		{"static", flags.site.static, &cfg.Static},
		{"output", flags.site.output, &cfg.Output},
		{"template", flags.assets.template, &cfg.Template},
		{"style", flags.assets.style, &cfg.Style},
		{"asset-path", flags.assets.assetPath, &cfg.Assets.BasePath},
		{"base-path", flags.basePath, &cfg.BasePath},
		{"engine", flags.engine, &cfg.Engine},
		{"timeout", flags.timeout, &cfg.PDF.Timeout},
	}
	for _, f := range stringFlags {
		if flags.isSet(f.name) {
			*f.dst = f.value
		}
	}

	if flags.isSet("pdf") {
		cfg.PDF.Enabled = flags.pdf
	}
	if flags.isSet("workers") {
		cfg.Workers = flags.workers
	}
	if flags.assets.noStyle {
		cfg.Style = ""
	}
}

func (f *buildFlags) isSet(name string) bool {
	return f.changed != nil && f.changed(name)
}

// converterOptions maps a validated config to converter options.
func converterOptions(cfg *config.Config) []mdsite.Option {
	// Validate already parsed both values.
	engine, _ := mdsite.ParseEngine(cfg.Engine)
	timeout, _ := cfg.PDF.TimeoutDuration()

	return []mdsite.Option{
		mdsite.WithEngine(engine),
		mdsite.WithTemplate(cfg.Template),
		mdsite.WithStyle(cfg.Style),
		mdsite.WithAssetPath(cfg.Assets.BasePath),
		mdsite.WithBasePath(cfg.BasePath),
		mdsite.WithPDF(cfg.PDF.Enabled),
		mdsite.WithTimeout(timeout),
	}
}

// prepareOutput deletes and recreates the output directory. It refuses
// when the working directory, content or static directory lies inside it.
func prepareOutput(cfg *config.Config) error {
	protected := []string{".", cfg.Content, cfg.Static}
	for _, dir := range protected {
		if dir != "" && fileutil.IsWithin(cfg.Output, dir) {
			return fmt.Errorf("%w %q: it contains %q", ErrUnsafeOutput, cfg.Output, dir)
		}
	}

	if err := os.RemoveAll(cfg.Output); err != nil {
		return fmt.Errorf("%w: removing %s: %v", ErrWritePage, cfg.Output, err)
	}
	if err := os.MkdirAll(cfg.Output, dirPermissions); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWritePage, cfg.Output, err)
	}
	return nil
}

// copyStatic copies the static tree into dst, logging each file.
// A missing static directory is not an error.
func copyStatic(src, dst string, log zerolog.Logger) error {
	if src == "" || !fileutil.DirExists(src) {
		log.Info().Str("dir", src).Msg("No static directory, skipping")
		return nil
	}

	err := fileutil.CopyDir(src, dst, func(path string) {
		log.Info().Str("file", path).Msg("Copied file")
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCopyStatic, err)
	}
	return nil
}
