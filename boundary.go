package matter

import (
	"fmt"
	"strings"
)

// bom is the UTF-8 byte order mark some editors prefix to files.
// It is ignored for detection and never included in split results.
const bom = "\ufeff"

// Boundary is a start/end marker pair delimiting a front matter block,
// together with the shared splitting algorithm used by marker-based
// handlers. Each marker must occupy its own line; trailing spaces or
// tabs on a marker line are tolerated, as are \r\n line endings.
type Boundary struct {
	Start string
	End   string
}

// Match reports whether text begins with the start marker on its own
// line, after an optional byte order mark. This is a cheap syntactic
// probe; it does not validate the block.
func (b Boundary) Match(text string) bool {
	text = strings.TrimPrefix(text, bom)
	line, _, _ := strings.Cut(text, "\n")
	return isMarkerLine(line, b.Start)
}

// Split separates text into raw front matter text and content.
//
// When the start marker is absent the whole text is returned as
// content with empty front matter and no error. A start marker with no
// matching end marker before end of text returns ErrMissingEndBoundary.
//
// The returned front matter has line endings normalized to \n. Content
// keeps its original bytes, except that at most one leading newline is
// stripped: a blank line immediately after the end marker is the
// conventional separator and belongs to the framing, not the content.
// No trailing modification is applied.
func (b Boundary) Split(text string) (string, string, error) {
	text = strings.TrimPrefix(text, bom)

	first, rest, hasMore := strings.Cut(text, "\n")
	if !isMarkerLine(first, b.Start) {
		return "", text, nil
	}
	if !hasMore {
		return "", "", fmt.Errorf("front matter opened with %q: %w", b.Start, ErrMissingEndBoundary)
	}

	var lines []string
	for {
		line, tail, more := strings.Cut(rest, "\n")
		if isMarkerLine(line, b.End) {
			return strings.Join(lines, "\n"), trimLeadingNewline(tail), nil
		}
		if !more {
			return "", "", fmt.Errorf("front matter opened with %q: %w", b.Start, ErrMissingEndBoundary)
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		rest = tail
	}
}

// isMarkerLine reports whether line is exactly the marker, allowing
// trailing spaces or tabs and a trailing \r from CRLF input.
func isMarkerLine(line, marker string) bool {
	line = strings.TrimSuffix(line, "\r")
	rest, ok := strings.CutPrefix(line, marker)
	if !ok {
		return false
	}
	return strings.TrimRight(rest, " \t") == ""
}

// trimLeadingNewline strips at most one leading \n or \r\n from s.
func trimLeadingNewline(s string) string {
	if t, ok := strings.CutPrefix(s, "\r\n"); ok {
		return t
	}
	if t, ok := strings.CutPrefix(s, "\n"); ok {
		return t
	}
	return s
}

// formatDocument assembles the canonical document layout: marker lines
// around the block and exactly one blank line before content,
// regardless of how many blank lines the input carried. An empty block
// collapses to adjacent marker lines.
func formatDocument(b Boundary, frontMatter, content string) string {
	var sb strings.Builder
	sb.WriteString(b.Start)
	sb.WriteByte('\n')
	if frontMatter != "" {
		sb.WriteString(frontMatter)
		sb.WriteByte('\n')
	}
	sb.WriteString(b.End)
	sb.WriteString("\n\n")
	sb.WriteString(content)
	return sb.String()
}
