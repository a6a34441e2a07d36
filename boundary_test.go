package matter

import (
	"errors"
	"testing"
)

func TestBoundaryMatch(t *testing.T) {
	t.Parallel()
	b := Boundary{Start: "---", End: "---"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "marker line", text: "---\ntitle: X\n---\n", want: true},
		{name: "marker only", text: "---", want: true},
		{name: "marker with trailing spaces", text: "---   \ntitle: X\n---\n", want: true},
		{name: "marker with CRLF", text: "---\r\ntitle: X\r\n---\r\n", want: true},
		{name: "marker after BOM", text: "\ufeff---\ntitle: X\n---\n", want: true},
		{name: "no marker", text: "Just a document.\n", want: false},
		{name: "marker not first", text: "\n---\ntitle: X\n---\n", want: false},
		{name: "longer run of dashes", text: "----\ntitle: X\n----\n", want: false},
		{name: "marker with trailing text", text: "--- title\n", want: false},
		{name: "empty text", text: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := b.Match(tt.text); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBoundarySplit(t *testing.T) {
	t.Parallel()
	b := Boundary{Start: "---", End: "---"}

	tests := []struct {
		name        string
		text        string
		wantFM      string
		wantContent string
	}{
		{
			name:        "canonical document",
			text:        "---\ntitle: Hello, world!\nlayout: post\n---\n\nWell, hello there, world.\n",
			wantFM:      "title: Hello, world!\nlayout: post",
			wantContent: "Well, hello there, world.\n",
		},
		{
			name:        "no blank separator",
			text:        "---\ntitle: X\n---\nBody\n",
			wantFM:      "title: X",
			wantContent: "Body\n",
		},
		{
			name:        "extra blank lines kept in content",
			text:        "---\ntitle: X\n---\n\n\nBody",
			wantFM:      "title: X",
			wantContent: "\nBody",
		},
		{
			name:        "empty block",
			text:        "---\n---\n\nBody",
			wantFM:      "",
			wantContent: "Body",
		},
		{
			name:        "end marker is last line",
			text:        "---\ntitle: X\n---",
			wantFM:      "title: X",
			wantContent: "",
		},
		{
			name:        "no front matter",
			text:        "Just a document.\n",
			wantFM:      "",
			wantContent: "Just a document.\n",
		},
		{
			name:        "crlf line endings",
			text:        "---\r\ntitle: X\r\n---\r\n\r\nBody\r\n",
			wantFM:      "title: X",
			wantContent: "Body\r\n",
		},
		{
			name:        "leading BOM",
			text:        "\ufeff---\ntitle: X\n---\n\nBody",
			wantFM:      "title: X",
			wantContent: "Body",
		},
		{
			name:        "trailing whitespace on markers",
			text:        "--- \ntitle: X\n---\t\n\nBody",
			wantFM:      "title: X",
			wantContent: "Body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fm, content, err := b.Split(tt.text)
			if err != nil {
				t.Fatalf("Split(%q): unexpected error: %v", tt.text, err)
			}
			if fm != tt.wantFM {
				t.Errorf("front matter = %q, want %q", fm, tt.wantFM)
			}
			if content != tt.wantContent {
				t.Errorf("content = %q, want %q", content, tt.wantContent)
			}
		})
	}
}

func TestBoundarySplitMissingEndMarker(t *testing.T) {
	t.Parallel()
	b := Boundary{Start: "---", End: "---"}

	tests := []struct {
		name string
		text string
	}{
		{name: "no end marker", text: "---\ntitle: X\nBody"},
		{name: "marker only", text: "---"},
		{name: "marker and newline", text: "---\n"},
		{name: "end marker with trailing text", text: "---\ntitle: X\n--- end\nBody"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := b.Split(tt.text)
			if !errors.Is(err, ErrMissingEndBoundary) {
				t.Errorf("Split(%q) error = %v, want ErrMissingEndBoundary", tt.text, err)
			}
		})
	}
}

func TestBoundarySplitCustomMarkers(t *testing.T) {
	t.Parallel()
	b := Boundary{Start: "+++", End: "+++"}

	fm, content, err := b.Split("+++\ntitle = \"X\"\n+++\n\nBody\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != "title = \"X\"" {
		t.Errorf("front matter = %q, want %q", fm, "title = \"X\"")
	}
	if content != "Body\n" {
		t.Errorf("content = %q, want %q", content, "Body\n")
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()
	b := Boundary{Start: "---", End: "---"}

	tests := []struct {
		name    string
		fm      string
		content string
		want    string
	}{
		{
			name:    "block and content",
			fm:      "title: X",
			content: "Body\n",
			want:    "---\ntitle: X\n---\n\nBody\n",
		},
		{
			name:    "empty block collapses",
			fm:      "",
			content: "Body\n",
			want:    "---\n---\n\nBody\n",
		},
		{
			name:    "empty content",
			fm:      "title: X",
			content: "",
			want:    "---\ntitle: X\n---\n\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatDocument(b, tt.fm, tt.content); got != tt.want {
				t.Errorf("formatDocument() = %q, want %q", got, tt.want)
			}
		})
	}
}
