package matter

// Metadata is decoded front matter: string keys mapped to arbitrary
// decoded values (scalars, sequences, nested mappings). Key order is
// not semantically significant; handlers document how they order keys
// on encode.
type Metadata map[string]any

// Handler is the capability responsible for one front matter encoding.
//
// Detect is a cheap syntactic probe used for registry dispatch, not
// full validation. Split separates raw front matter text from content;
// marker-based handlers delegate to Boundary.Split. Decode and Encode
// convert between front matter text and Metadata, wrapping codec
// failures in *DecodeError and *EncodeError. Format reassembles a full
// document from encoded front matter text and content.
type Handler interface {
	Detect(text string) bool
	Split(text string) (frontMatter, content string, err error)
	Decode(frontMatter string) (Metadata, error)
	Encode(metadata Metadata) (string, error)
	Format(frontMatter, content string) string
}
