package assets

// AssetLoader loads stylesheets and page templates by name, without the
// file extension.
type AssetLoader interface {
	// LoadStyle returns ErrStyleNotFound for an unknown style.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns ErrTemplateNotFound for an unknown template.
	LoadTemplate(name string) (string, error)
}
