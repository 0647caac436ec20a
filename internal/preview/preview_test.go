package preview

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConverter_ToHTML(t *testing.T) {
	t.Parallel()

	c := NewConverter()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "heading",
			input: "# Отчёт",
			want:  []string{"<h1", "Отчёт</h1>"},
		},
		{
			name:  "gfm table",
			input: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:  []string{"<table>", "<td>1</td>"},
		},
		{
			name:  "strikethrough",
			input: "~~old~~",
			want:  []string{"<del>old</del>"},
		},
		{
			name:  "highlighted code uses classes",
			input: "```go\nfunc main() {}\n```",
			want:  []string{"class=\"chroma\"", "<span class="},
		},
		{
			name:  "raw html is not passed through",
			input: "<script>alert(1)</script>",
			want:  []string{"<!-- raw HTML omitted -->"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestConverter_ToHTML_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConverter().ToHTML(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

func TestConverter_Page(t *testing.T) {
	t.Parallel()

	c := NewConverter()
	page, err := c.Page(context.Background(), "a<b", "# Title", []string{"<b>Title</b>", "second"})
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>a&lt;b</title>",
		"Title</h1>",
		"1/2 &middot; 12 chars</header><b>Title</b>",
		"2/2 &middot; 6 chars</header>second",
		".chroma",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Page() missing %q", want)
		}
	}
}
