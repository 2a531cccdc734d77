package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	mdsite "github.com/alnah/go-mdsite"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for page I/O.
var (
	ErrReadPage  = errors.New("failed to read content file")
	ErrWritePage = errors.New("failed to write page")
)

// BuildResult holds the outcome of a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	PDFPath    string // empty without PDF export
	Title      string
	Err        error
	Duration   time.Duration
}

// buildBatch converts pages concurrently using the converter pool.
// Results keep the order of pages.
func buildBatch(ctx context.Context, pool Pool, pages []PageToBuild, log zerolog.Logger) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(pages))

	results := make([]BuildResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark this worker's jobs as failed
				for idx := range jobs {
					results[idx] = BuildResult{InputPath: pages[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{InputPath: pages[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = buildPage(ctx, conv, pages[idx], log)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts one content file and writes the page, plus its PDF
// when the converter produced one.
func buildPage(ctx context.Context, conv PageConverter, p PageToBuild, log zerolog.Logger) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}
	fail := func(err error) BuildResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	log.Info().Str("from", p.InputPath).Str("to", p.OutputPath).Msg("Generating page")

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadPage, err))
	}

	page, err := conv.Convert(ctx, mdsite.Input{Markdown: string(content)})
	if err != nil {
		return fail(err)
	}
	result.Title = page.Title

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating directory: %v", ErrWritePage, err))
	}

	// #nosec G306 -- pages are meant to be readable
	if err := os.WriteFile(p.OutputPath, page.HTML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWritePage, err))
	}

	if page.PDF != nil {
		result.PDFPath = pdfOutputPath(p.OutputPath)
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(result.PDFPath, page.PDF, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWritePage, err))
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the error of the first failed page, or nil.
func firstError(results []BuildResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults writes one line per page and a summary, and returns the
// number of failures.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PDFPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
