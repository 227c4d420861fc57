package pubfolio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("pubfolio: post not found")

// DefaultContentExt is the extension of catalog-eligible content files.
const DefaultContentExt = ".mdx"

// Document is one raw content file as stored by a Source.
type Document struct {
	Slug string
	Name string // file name including extension
	Body []byte
}

// Source is a read-only repository of content documents. The catalog only
// talks to a Source, so content can live on disk, in an embedded FS or in
// SQLite.
type Source interface {
	// List returns every document slug in source order.
	List(ctx context.Context) ([]string, error)
	// Get returns the document for slug, or ErrNotFound.
	Get(ctx context.Context, slug string) (Document, error)
}

// DirSource serves documents with a fixed extension from the top level of
// a filesystem.
type DirSource struct {
	fsys fs.FS
	ext  string
}

// NewDirSource creates a DirSource over fsys. An empty ext means
// DefaultContentExt.
func NewDirSource(fsys fs.FS, ext string) *DirSource {
	if ext == "" {
		ext = DefaultContentExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &DirSource{fsys: fsys, ext: ext}
}

// OpenDir returns a DirSource rooted at dir. It fails if dir is missing or
// is not a directory.
func OpenDir(dir, ext string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", dir)
	}
	return NewDirSource(os.DirFS(dir), ext), nil
}

// Ext returns the recognised file extension.
func (s *DirSource) Ext() string {
	return s.ext
}

// List returns the slugs of all regular files carrying the source extension,
// sorted by file name.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var slugs []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.HasSuffix(e.Name(), s.ext) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), s.ext))
	}
	return slugs, nil
}

// Get reads the file slug+ext. Slugs that are not a single path element are
// reported as not found.
func (s *DirSource) Get(ctx context.Context, slug string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if !validSlug(slug) {
		return Document{}, ErrNotFound
	}
	name := slug + s.ext
	body, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("read %s: %w", name, err)
	}
	return Document{Slug: slug, Name: name, Body: body}, nil
}

func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return fs.ValidPath(slug) && !strings.ContainsAny(slug, `/\`)
}
