package matter

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// TOMLHandler reads and writes TOML front matter delimited by "+++"
// marker lines. Encoding orders top-level keys lexicographically, per
// go-toml's map behavior; an empty mapping encodes to an empty block.
type TOMLHandler struct {
	boundary Boundary
}

// NewTOMLHandler returns a TOMLHandler with the conventional "+++"
// markers.
func NewTOMLHandler() *TOMLHandler {
	return &TOMLHandler{boundary: Boundary{Start: "+++", End: "+++"}}
}

func (h *TOMLHandler) Detect(text string) bool {
	return h.boundary.Match(text)
}

func (h *TOMLHandler) Split(text string) (string, string, error) {
	return h.boundary.Split(text)
}

func (h *TOMLHandler) Decode(frontMatter string) (Metadata, error) {
	md := Metadata{}
	if err := toml.Unmarshal([]byte(frontMatter), &md); err != nil {
		return nil, &DecodeError{Format: "toml", Err: err}
	}
	return md, nil
}

func (h *TOMLHandler) Encode(metadata Metadata) (string, error) {
	if len(metadata) == 0 {
		return "", nil
	}
	out, err := toml.Marshal(metadata)
	if err != nil {
		return "", &EncodeError{Format: "toml", Err: err}
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (h *TOMLHandler) Format(frontMatter, content string) string {
	return formatDocument(h.boundary, frontMatter, content)
}
