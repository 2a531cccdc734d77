package mdsite

// Notes:
// - Convert is tested with the real pipeline stages and a fake PDF converter,
//   so no browser is needed. Real PDF rendering is out of unit test scope.
// - withPDFConverter and withHTMLConverter are test-only options.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Test doubles
// ---------------------------------------------------------------------------

type fakePDFConverter struct {
	input  string
	output []byte
	err    error
	closed bool
}

func (f *fakePDFConverter) ToPDF(_ context.Context, htmlContent string) ([]byte, error) {
	f.input = htmlContent
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func (f *fakePDFConverter) Close() error {
	f.closed = true
	return nil
}

type panickingHTMLConverter struct{}

func (panickingHTMLConverter) ToHTML(context.Context, string) (string, error) {
	panic("boom")
}

func withPDFConverter(p pdfConverter) Option {
	return func(c *Converter) {
		c.pdfConverter = p
	}
}

func withHTMLConverter(h pipeline.HTMLConverter) Option {
	return func(c *Converter) {
		c.htmlConverter = h
	}
}

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()

	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })
	return conv
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestConvert - Full page pipeline
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	template := writeFile(t, dir, "template.html",
		`<html><head><title>{{ Title }}</title><link href="/index.css" rel="stylesheet"/></head><body>{{ Content }}</body></html>`)

	tests := []struct {
		name         string
		opts         []Option
		markdown     string
		wantTitle    string
		wantBody     string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:      "default template",
			markdown:  "# Tolkien Fan Club\n\n**I like Tolkien**. Read my [first post here](/majesty)",
			wantTitle: "Tolkien Fan Club",
			wantBody:  "<div><h1>Tolkien Fan Club</h1><p><b>I like Tolkien</b>. Read my <a>first post here</a></p></div>",
			wantContains: []string{
				"<title>Tolkien Fan Club</title>",
				"<article><div><h1>Tolkien Fan Club</h1>",
			},
			wantExcludes: []string{"{{ Title }}", "{{ Content }}", "<style>"},
		},
		{
			name:      "file template with base path",
			opts:      []Option{WithTemplate(template), WithBasePath("/srv/www/tolkien/")},
			markdown:  "# Home\n\n![logo](/images/logo.png)",
			wantTitle: "Home",
			wantContains: []string{
				`href="/tolkien/index.css"`,
				`src="/tolkien/images/logo.png"`,
				"<title>Home</title>",
			},
		},
		{
			name:         "embedded style injected",
			opts:         []Option{WithStyle("default")},
			markdown:     "# Styled",
			wantContains: []string{"<style>", "</style></head>"},
			wantTitle:    "Styled",
		},
		{
			name:      "crlf input",
			markdown:  "# Title\r\n\r\n- a\r\n- b\r\n",
			wantTitle: "Title",
			wantBody:  "<div><h1>Title</h1><ul><li>a</li><li>b</li></ul></div>",
		},
		{
			name:         "goldmark engine",
			opts:         []Option{WithEngine(EngineGoldmark)},
			markdown:     "# Title\n\n[docs](/docs)",
			wantTitle:    "Title",
			wantContains: []string{`<a href="/docs">docs</a>`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newTestConverter(t, tt.opts...)
			page, err := conv.Convert(context.Background(), Input{Markdown: tt.markdown})
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}

			if page.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", page.Title, tt.wantTitle)
			}
			if tt.wantBody != "" && page.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", page.Body, tt.wantBody)
			}
			html := string(page.HTML)
			for _, want := range tt.wantContains {
				if !strings.Contains(html, want) {
					t.Errorf("HTML missing %q\ngot: %s", want, html)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(html, exclude) {
					t.Errorf("HTML should not contain %q\ngot: %s", exclude, html)
				}
			}
			if page.PDF != nil {
				t.Error("PDF should be nil without WithPDF")
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		wantErr  error
	}{
		{"empty", "", ErrEmptyMarkdown},
		{"whitespace only", "\n \n", ErrEmptyMarkdown},
		{"unterminated bold", "# Title\n\nsome **bold", ErrUnterminatedDelimiter},
		{"no title", "## Sub\n\ntext", ErrNoHeadingFound},
	}

	conv := newTestConverter(t)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := conv.Convert(context.Background(), Input{Markdown: tt.markdown})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if page != nil {
				t.Error("Convert() returned a page on error")
			}
		})
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := newTestConverter(t)
	if _, err := conv.Convert(ctx, Input{Markdown: "# x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvert_RecoversPanic(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, withHTMLConverter(panickingHTMLConverter{}))
	_, err := conv.Convert(context.Background(), Input{Markdown: "# x"})
	if err == nil || !strings.Contains(err.Error(), "internal error: boom") {
		t.Errorf("Convert() error = %v, want recovered panic", err)
	}
}

func TestConvert_PDF(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{output: []byte("%PDF-1.7")}
	conv, err := NewConverter(WithPDF(true), WithBasePath("/blog"), withPDFConverter(fake))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}

	page, err := conv.Convert(context.Background(), Input{Markdown: "# Title\n\n![a](/a.png)"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if string(page.PDF) != "%PDF-1.7" {
		t.Errorf("PDF = %q", page.PDF)
	}
	if fake.input != string(page.HTML) {
		t.Error("PDF converter should receive the final page HTML")
	}

	if err := conv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !fake.closed {
		t.Error("Close() should close the PDF converter")
	}
}

func TestConvert_PDFError(t *testing.T) {
	t.Parallel()

	fake := &fakePDFConverter{err: ErrBrowserConnect}
	conv := newTestConverter(t, WithPDF(true), withPDFConverter(fake))

	_, err := conv.Convert(context.Background(), Input{Markdown: "# Title"})
	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("Convert() error = %v, want ErrBrowserConnect", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewConverter - Option resolution
// ---------------------------------------------------------------------------

func TestNewConverter_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	emptyTemplate := writeFile(t, dir, "empty.html", "  \n")

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"unknown engine", []Option{WithEngine("pandoc")}, ErrInvalidEngine},
		{"unknown style", []Option{WithStyle("nonexistent")}, ErrStyleNotFound},
		{"missing style file", []Option{WithStyle(filepath.Join(dir, "missing.css"))}, ErrStyleNotFound},
		{"unknown template", []Option{WithTemplate("nonexistent")}, ErrTemplateNotFound},
		{"missing template file", []Option{WithTemplate(filepath.Join(dir, "missing.html"))}, ErrTemplateNotFound},
		{"empty template", []Option{WithTemplate(emptyTemplate)}, ErrTemplateEmpty},
		{"bad asset path", []Option{WithAssetPath(filepath.Join(dir, "missing"))}, ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewConverter() error = %v, want %v", err, tt.wantErr)
			}
			if conv != nil {
				t.Error("NewConverter() returned a converter on error")
			}
		})
	}
}

func TestNewConverter_AssetPathOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, sub := range []string{"styles", "templates"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", sub, err)
		}
	}
	writeFile(t, filepath.Join(dir, "styles"), "brand.css", "h1{color:teal}")
	writeFile(t, filepath.Join(dir, "templates"), "page.html", "<head></head><main>{{ Content }}</main>")

	conv := newTestConverter(t, WithAssetPath(dir), WithStyle("brand"))
	page, err := conv.Convert(context.Background(), Input{Markdown: "# Hi"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	want := "<head><style>h1{color:teal}</style></head><main><div><h1>Hi</h1></div></main>"
	if string(page.HTML) != want {
		t.Errorf("HTML = %q, want %q", page.HTML, want)
	}
}

func TestNewConverter_NoBrowserWithoutPDF(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	if conv.pdfConverter != nil {
		t.Error("pdfConverter should be nil without WithPDF")
	}
}

func TestWithTimeout_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, WithTimeout(0), WithTimeout(-1))
	if conv.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", conv.cfg.timeout, defaultTimeout)
	}
}

func TestParseEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Engine
		wantErr bool
	}{
		{"", EngineBuiltin, false},
		{"builtin", EngineBuiltin, false},
		{" Goldmark ", EngineGoldmark, false},
		{"pandoc", "", true},
	}

	for _, tt := range tests {
		got, err := ParseEngine(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEngine(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseEngine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
