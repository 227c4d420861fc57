package pubfolio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestDirSourceList(t *testing.T) {
	src := NewDirSource(fstest.MapFS{
		"b.mdx":        {Data: []byte("b")},
		"a.mdx":        {Data: []byte("a")},
		"c.md":         {Data: []byte("c")},
		"nested/d.mdx": {Data: []byte("d")},
	}, "mdx")

	if src.Ext() != ".mdx" {
		t.Errorf("expected extension to gain a dot, got %q", src.Ext())
	}
	got, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestDirSourceGet(t *testing.T) {
	src := NewDirSource(fstest.MapFS{"a.mdx": {Data: []byte("hello")}}, "")
	ctx := context.Background()

	doc, err := src.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if doc.Name != "a.mdx" || string(doc.Body) != "hello" {
		t.Errorf("unexpected document: %+v", doc)
	}

	for _, slug := range []string{"missing", "", "..", "nested/a", `a\b`} {
		if _, err := src.Get(ctx, slug); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q): expected ErrNotFound, got %v", slug, err)
		}
	}
}

func TestOpenDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.mdx"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenDir(dir, "")
	if err != nil {
		t.Fatalf("OpenDir failed: %v", err)
	}
	slugs, err := src.List(context.Background())
	if err != nil || len(slugs) != 1 || slugs[0] != "x" {
		t.Errorf("unexpected list: %v %v", slugs, err)
	}

	if _, err := OpenDir(filepath.Join(dir, "missing"), ""); err == nil {
		t.Error("expected error for missing directory")
	}
	if _, err := OpenDir(filepath.Join(dir, "x.mdx"), ""); err == nil {
		t.Error("expected error for a file path")
	}
}
