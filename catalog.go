package pubfolio

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
)

// ErrUndated is returned by GetPost when the document exists but no date
// can be derived for it.
var ErrUndated = errors.New("pubfolio: post has no resolvable date")

// Catalog builds the ordered post collection from a Source. It holds no
// state between calls: every read goes back to the source.
type Catalog struct {
	source  Source
	logger  *zap.Logger
	metrics *catalogMetrics
}

// NewCatalog creates a Catalog over src. A nil logger disables logging.
func NewCatalog(src Source, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{source: src, logger: logger}
}

// ListAllPosts returns every dated post, most recent first. Documents that
// fail to load or carry no usable date are skipped.
func (c *Catalog) ListAllPosts(ctx context.Context) ([]Post, error) {
	slugs, err := c.source.List(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(slugs))
	for _, slug := range slugs {
		doc, err := c.source.Get(ctx, slug)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.logger.Warn("skipping unreadable document", zap.String("slug", slug), zap.Error(err))
			c.metrics.skipped("unreadable")
			continue
		}
		post, ok := ParseDocument(doc)
		if !ok {
			c.logger.Debug("skipping undated document", zap.String("slug", slug))
			c.metrics.skipped("undated")
			continue
		}
		posts = append(posts, post)
	}

	SortPosts(posts)
	c.metrics.built(len(posts))
	return posts, nil
}

// GetPost returns the post stored under slug.
func (c *Catalog) GetPost(ctx context.Context, slug string) (Post, error) {
	doc, err := c.source.Get(ctx, slug)
	if err != nil {
		return Post{}, err
	}
	post, ok := ParseDocument(doc)
	if !ok {
		return post, ErrUndated
	}
	return post, nil
}

// RelatedPosts returns up to n of the most recent posts other than slug.
// An unknown slug excludes nothing.
func (c *Catalog) RelatedPosts(ctx context.Context, slug string, n int) ([]Post, error) {
	posts, err := c.ListAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return SelectRelated(posts, slug, n), nil
}

// SelectRelated picks up to n posts from an already sorted list, skipping
// the anchor slug.
func SelectRelated(posts []Post, slug string, n int) []Post {
	if n <= 0 {
		return []Post{}
	}
	related := make([]Post, 0, n)
	for _, p := range posts {
		if p.Slug == slug {
			continue
		}
		related = append(related, p)
		if len(related) == n {
			break
		}
	}
	return related
}

// SortPosts orders posts by date descending. Equal dates keep their input
// order.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
}

// GroupByYear partitions posts by the year prefix of their date, keeping
// the input order inside each bucket.
func GroupByYear(posts []Post) map[string][]Post {
	groups := make(map[string][]Post)
	for _, p := range posts {
		year := p.Year()
		groups[year] = append(groups[year], p)
	}
	return groups
}

// Years returns the keys of groups in descending order.
func Years(groups map[string][]Post) []string {
	years := make([]string, 0, len(groups))
	for y := range groups {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// YearGroups is GroupByYear in presentation order.
func YearGroups(posts []Post) []YearGroup {
	groups := GroupByYear(posts)
	out := make([]YearGroup, 0, len(groups))
	for _, y := range Years(groups) {
		out = append(out, YearGroup{Year: y, Posts: groups[y]})
	}
	return out
}
