package matter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JSONHandler reads and writes JSON front matter. The whole block is a
// single JSON object literal with no separate end marker line:
// detection checks for a leading "{", and splitting scans for the
// balancing closing brace, tracking string literals and escapes so
// braces inside strings are ignored.
//
// Decoding preserves number precision via json.Number. Encoding emits
// a two-space indented object with sorted keys and HTML escaping off.
type JSONHandler struct{}

// NewJSONHandler returns a JSONHandler.
func NewJSONHandler() *JSONHandler {
	return &JSONHandler{}
}

func (h *JSONHandler) Detect(text string) bool {
	return strings.HasPrefix(strings.TrimPrefix(text, bom), "{")
}

func (h *JSONHandler) Split(text string) (string, string, error) {
	text = strings.TrimPrefix(text, bom)
	if !strings.HasPrefix(text, "{") {
		return "", text, nil
	}
	end, ok := matchBrace(text)
	if !ok {
		return "", "", fmt.Errorf("json front matter opened with %q: %w", "{", ErrMissingEndBoundary)
	}

	// The end of the closing brace's line belongs to the framing, as
	// does one blank separator line after it.
	content := trimLeadingNewline(text[end+1:])
	content = trimLeadingNewline(content)
	return text[:end+1], content, nil
}

func (h *JSONHandler) Decode(frontMatter string) (Metadata, error) {
	dec := json.NewDecoder(strings.NewReader(frontMatter))
	dec.UseNumber()

	md := Metadata{}
	if err := dec.Decode(&md); err != nil {
		return nil, &DecodeError{Format: "json", Err: err}
	}
	return md, nil
}

func (h *JSONHandler) Encode(metadata Metadata) (string, error) {
	if metadata == nil {
		metadata = Metadata{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(metadata); err != nil {
		return "", &EncodeError{Format: "json", Err: err}
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Format emits the object literal followed by one blank line and the
// content. The braces are the markers; no extra delimiter lines are
// added.
func (h *JSONHandler) Format(frontMatter, content string) string {
	return frontMatter + "\n\n" + content
}

// matchBrace returns the index of the brace closing the object that
// opens at text[0].
func matchBrace(text string) (int, bool) {
	var (
		inString bool
		escaped  bool
		depth    int
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			if inString {
				escaped = true
			}
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
