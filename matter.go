// Package matter parses and serializes front matter: a block of
// structured metadata prefixed to an otherwise unstructured text
// document and delimited by a recognizable marker.
//
// Documents are split into a metadata block and a content block, the
// metadata is decoded into a generic mapping, and the inverse
// operation reassembles metadata and content into a single document.
// YAML ("---" markers, the default), TOML ("+++" markers) and JSON
// (a leading object literal) are built in; other encodings can be
// added by registering a Handler.
//
// The package-level functions operate on a shared default registry.
// Construct a Registry explicitly to scope handler configuration to a
// caller.
package matter

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

// defaultRegistry backs the package-level functions. Extend it with
// Register before parsing begins; concurrent registration during
// active parsing is not supported.
var defaultRegistry = NewDefaultRegistry()

// Option configures a parse, load, check or dump operation.
type Option func(*options)

type options struct {
	handler     Handler
	handlerName string
	defaults    Metadata
}

// WithHandler forces the given handler, bypassing detection. On dump
// it overrides the handler stored on the post.
func WithHandler(h Handler) Option {
	return func(o *options) { o.handler = h }
}

// WithHandlerName forces the handler registered under name, bypassing
// detection. An unknown name surfaces ErrUnknownHandler before any
// parsing is attempted.
func WithHandlerName(name string) Option {
	return func(o *options) { o.handlerName = name }
}

// WithDefaults seeds metadata defaults. Keys decoded from the
// document override defaults with the same name.
func WithDefaults(defaults Metadata) Option {
	return func(o *options) { o.defaults = defaults }
}

func buildOptions(opts []Option) *options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// resolve picks the handler for text. An explicit option always wins;
// otherwise the first registered handler whose detection matches.
// A nil handler with nil error means no front matter is present.
func (r *Registry) resolve(text string, o *options) (Handler, error) {
	if o.handler != nil {
		return o.handler, nil
	}
	if o.handlerName != "" {
		return r.Lookup(o.handlerName)
	}
	return r.Detect(text), nil
}

// parseWith splits text with h and decodes the front matter. A nil
// handler, or a handler that finds no front matter, yields the
// defaults (or an empty mapping) and the text unchanged.
func (r *Registry) parseWith(h Handler, text string, o *options) (Metadata, string, error) {
	metadata := make(Metadata, len(o.defaults))
	maps.Copy(metadata, o.defaults)

	if h == nil {
		return metadata, strings.TrimPrefix(text, bom), nil
	}

	frontMatter, content, err := h.Split(text)
	if err != nil {
		return nil, "", err
	}
	if frontMatter == "" {
		return metadata, content, nil
	}

	decoded, err := h.Decode(frontMatter)
	if err != nil {
		return nil, "", err
	}
	maps.Copy(metadata, decoded)
	return metadata, content, nil
}

// Parse splits text into decoded metadata and content. Text without
// front matter parses to an empty mapping (or the WithDefaults
// values) and the unchanged text.
func (r *Registry) Parse(text string, opts ...Option) (Metadata, string, error) {
	o := buildOptions(opts)
	h, err := r.resolve(text, o)
	if err != nil {
		return nil, "", err
	}
	return r.parseWith(h, text, o)
}

// LoadString parses text into a Post. The resolved handler is stored
// on the post as its re-serialization default.
func (r *Registry) LoadString(text string, opts ...Option) (*Post, error) {
	o := buildOptions(opts)
	h, err := r.resolve(text, o)
	if err != nil {
		return nil, err
	}
	metadata, content, err := r.parseWith(h, text, o)
	if err != nil {
		return nil, err
	}
	return &Post{Content: content, Metadata: metadata, Handler: h}, nil
}

// Load reads rd fully and parses it into a Post.
func (r *Registry) Load(rd io.Reader, opts ...Option) (*Post, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return r.LoadString(string(data), opts...)
}

// LoadFile reads the file at path and parses it into a Post.
func (r *Registry) LoadFile(path string, opts ...Option) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return r.LoadString(string(data), opts...)
}

// CheckString reports whether text appears to carry front matter,
// using detection only; the text is never split or decoded. An
// explicit handler option short-circuits to true; an unknown handler
// name is an error.
func (r *Registry) CheckString(text string, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if o.handler != nil {
		return true, nil
	}
	if o.handlerName != "" {
		if _, err := r.Lookup(o.handlerName); err != nil {
			return false, err
		}
		return true, nil
	}
	return r.Detect(text) != nil, nil
}

// Check reads rd fully and reports whether it carries front matter.
func (r *Registry) Check(rd io.Reader, opts ...Option) (bool, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return false, fmt.Errorf("reading document: %w", err)
	}
	return r.CheckString(string(data), opts...)
}

// CheckFile reads the file at path and reports whether it carries
// front matter.
func (r *Registry) CheckFile(path string, opts ...Option) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return r.CheckString(string(data), opts...)
}

// DumpString serializes post back into a single document. The handler
// is the WithHandler or WithHandlerName override when given, then the
// handler stored on the post, then the registry default (yaml).
// WithDefaults is ignored on dump.
func (r *Registry) DumpString(post *Post, opts ...Option) (string, error) {
	o := buildOptions(opts)

	h := o.handler
	if h == nil && o.handlerName != "" {
		var err error
		h, err = r.Lookup(o.handlerName)
		if err != nil {
			return "", err
		}
	}
	if h == nil {
		h = post.Handler
	}
	if h == nil {
		h = r.defaultHandler()
	}
	if h == nil {
		return "", fmt.Errorf("no handler available for dump: %w", ErrUnknownHandler)
	}

	frontMatter, err := h.Encode(post.Metadata)
	if err != nil {
		return "", err
	}
	return h.Format(frontMatter, post.Content), nil
}

// Dump serializes post and writes the document to w.
func (r *Registry) Dump(post *Post, w io.Writer, opts ...Option) error {
	text, err := r.DumpString(post, opts...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// DumpFile serializes post and writes the document to the file at
// path, creating it with mode 0644 when absent.
func (r *Registry) DumpFile(post *Post, path string, opts ...Option) error {
	text, err := r.DumpString(post, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Register adds handler under name in the default registry, replacing
// any existing entry with that name.
func Register(name string, h Handler) { defaultRegistry.Register(name, h) }

// Parse splits text into decoded metadata and content using the
// default registry.
func Parse(text string, opts ...Option) (Metadata, string, error) {
	return defaultRegistry.Parse(text, opts...)
}

// LoadString parses text into a Post using the default registry.
func LoadString(text string, opts ...Option) (*Post, error) {
	return defaultRegistry.LoadString(text, opts...)
}

// Load reads rd fully and parses it into a Post using the default
// registry.
func Load(rd io.Reader, opts ...Option) (*Post, error) {
	return defaultRegistry.Load(rd, opts...)
}

// LoadFile reads the file at path and parses it into a Post using the
// default registry.
func LoadFile(path string, opts ...Option) (*Post, error) {
	return defaultRegistry.LoadFile(path, opts...)
}

// CheckString reports whether text appears to carry front matter.
func CheckString(text string, opts ...Option) (bool, error) {
	return defaultRegistry.CheckString(text, opts...)
}

// Check reads rd fully and reports whether it carries front matter.
func Check(rd io.Reader, opts ...Option) (bool, error) {
	return defaultRegistry.Check(rd, opts...)
}

// CheckFile reads the file at path and reports whether it carries
// front matter.
func CheckFile(path string, opts ...Option) (bool, error) {
	return defaultRegistry.CheckFile(path, opts...)
}

// DumpString serializes post back into a single document using the
// default registry.
func DumpString(post *Post, opts ...Option) (string, error) {
	return defaultRegistry.DumpString(post, opts...)
}

// Dump serializes post and writes the document to w using the default
// registry.
func Dump(post *Post, w io.Writer, opts ...Option) error {
	return defaultRegistry.Dump(post, w, opts...)
}

// DumpFile serializes post and writes the document to the file at
// path using the default registry.
func DumpFile(post *Post, path string, opts ...Option) error {
	return defaultRegistry.DumpFile(post, path, opts...)
}
