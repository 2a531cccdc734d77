package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{"default style", DefaultStyleName, nil, "font-family"},
		{"minimal style", "minimal", nil, "max-width"},
		{"unknown style", "nonexistent-style-xyz", ErrStyleNotFound, ""},
		{"empty name", "", ErrInvalidAssetName, ""},
		{"path traversal", "../secret", ErrInvalidAssetName, ""},
		{"backslash traversal", "..\\secret", ErrInvalidAssetName, ""},
		{"name with dot", "default.css", ErrInvalidAssetName, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) content should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) unexpected error: %v", DefaultTemplateName, err)
	}
	for _, placeholder := range []string{"{{ Title }}", "{{ Content }}", "</head>"} {
		if !strings.Contains(got, placeholder) {
			t.Errorf("default template should contain %q", placeholder)
		}
	}

	if _, err := loader.LoadTemplate("cover"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(cover) error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadTemplate("../page"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(../page) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedLoader_StyleNames(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	names := loader.StyleNames()

	want := []string{DefaultStyleName, "minimal"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("StyleNames() = %v, want %v", names, want)
	}
	for _, name := range names {
		if _, err := loader.LoadStyle(name); err != nil {
			t.Errorf("LoadStyle(%q) error = %v", name, err)
		}
	}
}
