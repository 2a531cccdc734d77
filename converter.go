package mdsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.TreeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
)

// Input is one Markdown page to convert.
type Input struct {
	Markdown string
}

// Page is a converted page.
type Page struct {
	Title string // text of the first "# " line
	Body  string // rendered Markdown fragment
	HTML  []byte // filled template with CSS and base path applied
	PDF   []byte // nil unless WithPDF(true)
}

// Converter runs the Markdown to page pipeline.
// Create with NewConverter, call Convert per page and Close when done.
// A Converter is not safe for concurrent use; see ConverterPool.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	template      *pipeline.PageTemplate
	css           string
	pdfConverter  pdfConverter // nil unless PDF export is enabled
}

// NewConverter creates a Converter. Templates and styles are loaded once
// here, so a missing asset fails before any page is converted.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:  EngineBuiltin,
			timeout: defaultTimeout,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.LineEndingPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine
	if c.htmlConverter == nil {
		c.htmlConverter = newHTMLConverter(engine)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.loadTemplate(); err != nil {
		return nil, err
	}
	if err := c.loadStyle(); err != nil {
		return nil, err
	}

	if c.cfg.pdf && c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

func newHTMLConverter(engine Engine) pipeline.HTMLConverter {
	if engine == EngineGoldmark {
		return pipeline.NewGoldmarkConverter()
	}
	return &pipeline.TreeConverter{}
}

// Convert runs the full pipeline for one page.
// Recovers from internal panics so one bad page cannot crash a batch.
func (c *Converter) Convert(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	markdown := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := c.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title, err := pipeline.ExtractTitle(markdown)
	if err != nil {
		return nil, err
	}

	htmlContent := c.template.Fill(title, body)
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlContent, err = pipeline.RewriteBasePath(htmlContent, c.cfg.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	page = &Page{
		Title: title,
		Body:  body,
		HTML:  []byte(htmlContent),
	}

	if c.pdfConverter == nil {
		return page, nil
	}

	page.PDF, err = c.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return page, nil
}

// Close releases the headless browser, if one was started.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// loadTemplate resolves the template option: empty means the default asset,
// a path is read from disk, anything else is an asset name.
func (c *Converter) loadTemplate() error {
	input := c.cfg.template
	if input == "" {
		input = assets.DefaultTemplateName
	}

	source, err := c.loadAsset(input, c.assetLoader.LoadTemplate, ErrTemplateNotFound)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", input, err)
	}

	c.template, err = pipeline.NewPageTemplate(source)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", input, err)
	}
	return nil
}

// loadStyle resolves the style option the same way. Empty means no CSS.
func (c *Converter) loadStyle() error {
	input := c.cfg.style
	if input == "" {
		return nil
	}

	css, err := c.loadAsset(input, c.assetLoader.LoadStyle, ErrStyleNotFound)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.css = css
	return nil
}

func (c *Converter) loadAsset(input string, byName func(string) (string, error), notFound error) (string, error) {
	if !fileutil.IsFilePath(input) {
		return byName(input)
	}

	content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %v", notFound, err)
		}
		return "", err
	}
	return string(content), nil
}
