package matter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLHandler reads and writes YAML front matter delimited by "---"
// marker lines. Encoding sorts mapping keys, which is yaml.v3's
// behavior for Go maps; an empty mapping encodes to an empty block so
// that the two marker lines sit adjacent.
type YAMLHandler struct {
	boundary Boundary
}

// NewYAMLHandler returns a YAMLHandler with the conventional "---"
// markers.
func NewYAMLHandler() *YAMLHandler {
	return &YAMLHandler{boundary: Boundary{Start: "---", End: "---"}}
}

// NewYAMLHandlerWithBoundary returns a YAMLHandler using custom
// markers, for documents that fence YAML with something other
// than "---".
func NewYAMLHandlerWithBoundary(b Boundary) *YAMLHandler {
	return &YAMLHandler{boundary: b}
}

func (h *YAMLHandler) Detect(text string) bool {
	return h.boundary.Match(text)
}

func (h *YAMLHandler) Split(text string) (string, string, error) {
	return h.boundary.Split(text)
}

func (h *YAMLHandler) Decode(frontMatter string) (Metadata, error) {
	md := Metadata{}
	if err := yaml.Unmarshal([]byte(frontMatter), &md); err != nil {
		return nil, &DecodeError{Format: "yaml", Err: err}
	}
	return md, nil
}

func (h *YAMLHandler) Encode(metadata Metadata) (string, error) {
	if len(metadata) == 0 {
		return "", nil
	}
	out, err := yaml.Marshal(metadata)
	if err != nil {
		return "", &EncodeError{Format: "yaml", Err: err}
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (h *YAMLHandler) Format(frontMatter, content string) string {
	return formatDocument(h.boundary, frontMatter, content)
}
