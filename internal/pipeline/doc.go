// Package pipeline implements the Markdown-to-page conversion pipeline.
//
// The stages, in the order the converter runs them:
//   - Markdown preprocessing (line ending normalization)
//   - Markdown to HTML: BuildTree plus htmlnode rendering, or Goldmark
//   - Title extraction from the first level-1 heading line
//   - Page template filling ({{ Title }} and {{ Content }})
//   - CSS injection into the filled page
//   - Base path rewriting of site-rooted href and src attributes
//
// BuildTree is a pure function of its input: it holds no state between
// calls and is safe to run from many goroutines at once.
package pipeline
