package pipeline

import (
	"context"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &LineEndingPreprocessor{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix untouched", "# A\n\nb", "# A\n\nb"},
		{"crlf", "# A\r\n\r\nb\r\n", "# A\n\nb\n"},
		{"lone cr", "a\rb", "a\nb"},
		{"blank line runs compressed", "a\n\n\n\n\nb", "a\n\nb"},
		{"mixed", "a\r\n\r\n\r\nb", "a\n\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &LineEndingPreprocessor{}
	if got := p.PreprocessMarkdown(ctx, "a\r\nb"); got != "a\r\nb" {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got)
	}
}

func TestPreprocessMarkdown_MakesCRLFBuildLikeLF(t *testing.T) {
	t.Parallel()

	p := &LineEndingPreprocessor{}
	lf, err := BuildTree(p.PreprocessMarkdown(context.Background(), "# T\n\n- a\n- b"))
	if err != nil {
		t.Fatalf("BuildTree(lf) unexpected error: %v", err)
	}
	crlf, err := BuildTree(p.PreprocessMarkdown(context.Background(), "# T\r\n\r\n- a\r\n- b"))
	if err != nil {
		t.Fatalf("BuildTree(crlf) unexpected error: %v", err)
	}
	if diff := nodeDiff(lf, crlf); diff != "" {
		t.Errorf("CRLF tree differs (-lf +crlf):\n%s", diff)
	}
}
