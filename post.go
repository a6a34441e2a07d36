package matter

import (
	"maps"
	"slices"
)

// Post is a parsed document: decoded front matter metadata plus the
// remaining content. Load and LoadString attach the handler that
// parsed the document, so a later Dump round-trips through the same
// encoding unless an override is given.
type Post struct {
	Content  string
	Metadata Metadata

	// Handler is only the re-serialization default, not ownership.
	// It is nil for documents parsed without front matter; Dump then
	// falls back to the registry default.
	Handler Handler
}

// NewPost returns a Post over content with empty metadata and no
// handler.
func NewPost(content string) *Post {
	return &Post{Content: content, Metadata: Metadata{}}
}

// String returns the post's content.
func (p *Post) String() string { return p.Content }

// Get returns the metadata value for key and whether it is present.
func (p *Post) Get(key string) (any, bool) {
	v, ok := p.Metadata[key]
	return v, ok
}

// GetDefault returns the metadata value for key, or fallback when the
// key is absent.
func (p *Post) GetDefault(key string, fallback any) any {
	if v, ok := p.Metadata[key]; ok {
		return v
	}
	return fallback
}

// Set stores value under key, mutating the owned metadata directly.
func (p *Post) Set(key string, value any) {
	if p.Metadata == nil {
		p.Metadata = Metadata{}
	}
	p.Metadata[key] = value
}

// Delete removes key from the metadata.
func (p *Post) Delete(key string) {
	delete(p.Metadata, key)
}

// Has reports whether key is present in the metadata.
func (p *Post) Has(key string) bool {
	_, ok := p.Metadata[key]
	return ok
}

// Keys returns the metadata keys, sorted.
func (p *Post) Keys() []string {
	keys := make([]string, 0, len(p.Metadata))
	for k := range p.Metadata {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ToMap returns the metadata plus a "content" key holding the post
// content, for serializing whole posts. The returned map is a copy;
// mutating it does not affect the post.
func (p *Post) ToMap() map[string]any {
	m := make(map[string]any, len(p.Metadata)+1)
	maps.Copy(m, p.Metadata)
	m["content"] = p.Content
	return m
}
