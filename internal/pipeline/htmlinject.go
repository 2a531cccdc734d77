package pipeline

import (
	"context"
	"errors"
	"strings"
)

// Template placeholders, replaced literally and everywhere they occur.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplateEmpty indicates a page template with no content.
var ErrTemplateEmpty = errors.New("page template is empty")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// PageTemplate fills a page template with a title and a body fragment.
type PageTemplate struct {
	source string
}

// NewPageTemplate validates and wraps template source.
// A template without placeholders is accepted and rendered as is.
func NewPageTemplate(source string) (*PageTemplate, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrTemplateEmpty
	}
	return &PageTemplate{source: source}, nil
}

// Fill substitutes every title placeholder, then every content placeholder.
// Both values are inserted verbatim.
func (t *PageTemplate) Fill(title, content string) string {
	out := strings.ReplaceAll(t.source, TitlePlaceholder, title)
	return strings.ReplaceAll(out, ContentPlaceholder, content)
}
