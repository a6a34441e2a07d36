package matter

import (
	"reflect"
	"testing"
)

func TestPostMetadataProxy(t *testing.T) {
	t.Parallel()
	post := NewPost("Body\n")

	post.Set("x", 1)
	if v, ok := post.Metadata["x"]; !ok || v != 1 {
		t.Errorf("Metadata[\"x\"] = %v, %v; want 1, true", v, ok)
	}
	if !post.Has("x") {
		t.Error("Has(\"x\") = false, want true")
	}
	if got := post.Keys(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Keys() = %v, want [x]", got)
	}

	v, ok := post.Get("x")
	if !ok || v != 1 {
		t.Errorf("Get(\"x\") = %v, %v; want 1, true", v, ok)
	}

	post.Delete("x")
	if post.Has("x") {
		t.Error("Has(\"x\") = true after Delete")
	}
	if _, ok := post.Get("x"); ok {
		t.Error("Get(\"x\") found a deleted key")
	}
}

func TestPostGetDefault(t *testing.T) {
	t.Parallel()
	post := NewPost("")
	post.Set("title", "Hello")

	if got := post.GetDefault("title", "fallback"); got != "Hello" {
		t.Errorf("GetDefault(\"title\") = %v, want Hello", got)
	}
	if got := post.GetDefault("missing", "fallback"); got != "fallback" {
		t.Errorf("GetDefault(\"missing\") = %v, want fallback", got)
	}
}

func TestPostKeysSorted(t *testing.T) {
	t.Parallel()
	post := NewPost("")
	post.Set("c", 1)
	post.Set("a", 2)
	post.Set("b", 3)

	want := []string{"a", "b", "c"}
	if got := post.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestPostSetOnZeroValue(t *testing.T) {
	t.Parallel()
	var post Post
	post.Set("x", 1)

	if !post.Has("x") {
		t.Error("Has(\"x\") = false after Set on zero value")
	}
}

func TestPostToMap(t *testing.T) {
	t.Parallel()
	post := NewPost("Body\n")
	post.Set("title", "Hello")

	got := post.ToMap()
	want := map[string]any{"title": "Hello", "content": "Body\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %#v, want %#v", got, want)
	}

	// The returned map is a copy.
	got["title"] = "changed"
	if v, _ := post.Get("title"); v != "Hello" {
		t.Errorf("mutating ToMap() result changed the post: %v", v)
	}
}

func TestPostString(t *testing.T) {
	t.Parallel()
	post := NewPost("Body\n")
	if got := post.String(); got != "Body\n" {
		t.Errorf("String() = %q, want %q", got, "Body\n")
	}
}
