package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// PageToBuild represents a single content file and its destination.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverPages walks contentDir and maps every regular file to a page under
// outputDir, mirroring the directory layout. Dotfiles and dot-directories
// are skipped. Results are in lexical walk order.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fileutil.ErrNotDirectory, contentDir)
	}

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if path != contentDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, PageToBuild{
			InputPath:  path,
			OutputPath: filepath.Join(outputDir, pageOutputName(rel)),
		})
		return nil
	})

	return pages, err
}

// pageOutputName maps a content-relative path to its output name.
// Markdown extensions become .html; any other name is kept as is.
func pageOutputName(rel string) string {
	if !isMarkdown(rel) {
		return rel
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}

// isMarkdown reports whether path has a .md or .markdown extension.
func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// pdfOutputPath returns the PDF path written next to a page.
func pdfOutputPath(pagePath string) string {
	return strings.TrimSuffix(pagePath, filepath.Ext(pagePath)) + ".pdf"
}
