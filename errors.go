package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidEngine    = errors.New("invalid markdown engine")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrPoolClosed       = errors.New("converter pool is closed")
)

// Markdown and tree errors, shared with the internal stages so errors.Is
// matches across layers.
var (
	ErrUnterminatedDelimiter = inline.ErrUnterminatedDelimiter
	ErrUnsupportedTextKind   = pipeline.ErrUnsupportedTextKind
	ErrUnsupportedBlockKind  = pipeline.ErrUnsupportedBlockKind
	ErrNoHeadingFound        = pipeline.ErrNoHeadingFound
	ErrHTMLConversion        = pipeline.ErrHTMLConversion

	ErrMissingValue    = htmlnode.ErrMissingValue
	ErrMissingTag      = htmlnode.ErrMissingTag
	ErrMissingChildren = htmlnode.ErrMissingChildren
	ErrInvalidTag      = htmlnode.ErrInvalidTag
)

// Asset errors.
var (
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrTemplateEmpty    = pipeline.ErrTemplateEmpty
)
