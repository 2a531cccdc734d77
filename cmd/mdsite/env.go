package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string // source of MDSITE_* variables
	Logger  zerolog.Logger  // progress log on Stderr
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
		Logger:  newLogger(os.Stderr, false, false),
	}
}

// newLogger writes human-readable progress lines to w.
// Warn by default, Info with verbose, Error with quiet. Quiet wins.
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
