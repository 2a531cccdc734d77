package main

// Notes:
// - Test helpers shared by the CLI tests. Sites are built under t.TempDir()
//   and every run gets an explicit environment, so tests stay parallel.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv returns an Environment writing to buffers with the given
// MDSITE_* variables.
func testEnv(environ ...string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:     time.Now,
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: func() []string { return environ },
		Logger:  newLogger(&stderr, false, true),
	}
	return env, &stdout, &stderr
}

// writeTree creates files under root from a path -> content map.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// siteDirs is a temp site layout: content/, static/ and public/.
type siteDirs struct {
	root, content, static, output string
}

func newSite(t *testing.T, content, static map[string]string) siteDirs {
	t.Helper()

	root := t.TempDir()
	s := siteDirs{
		root:    root,
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		output:  filepath.Join(root, "public"),
	}
	writeTree(t, s.content, content)
	if static != nil {
		writeTree(t, s.static, static)
	}
	// An explicit config keeps a user-level site.yaml out of the test.
	writeTree(t, root, map[string]string{"site.yaml": "engine: builtin\n"})
	return s
}

// args returns the command line for building s with extra flags.
func (s siteDirs) args(extra ...string) []string {
	return append([]string{
		"mdsite",
		"--config", filepath.Join(s.root, "site.yaml"),
		"--content", s.content,
		"--static", s.static,
		"--output", s.output,
	}, extra...)
}
