package pubfolio

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
)

const dateLayout = "2006-01-02"

// epochDate is what an unset date serialises to; a post carrying it has no
// real date.
const epochDate = "1970-01-01"

var (
	reFilenameDate  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	reYearLeading   = regexp.MustCompile(`^\d{4}`)
	reCanonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseDocument builds a Post from a raw document. The boolean is false when
// no usable date could be derived, in which case the post must not be
// listed.
func ParseDocument(doc Document) (Post, bool) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(doc.Body), &meta)
	if err != nil {
		// Malformed front matter: keep the whole file as body and derive
		// what we can from the file name.
		meta = map[string]any{}
		body = doc.Body
	}

	post := Post{
		Slug:               doc.Slug,
		Title:              doc.Slug,
		Description:        stringField(meta["description"]),
		Tag:                tagField(meta["tag"]),
		ReadingTimeMinutes: numberField(meta["readingTimeMinutes"]),
		Content:            string(body),
		Link:               postLink(doc.Slug),
	}
	if title := scalarField(meta["title"]); title != "" {
		post.Title = title
	}

	date := ""
	if raw, ok := meta["date"]; ok && raw != nil {
		date = NormalizeDate(raw)
	}
	if date == "" {
		date = dateFromName(doc.Slug)
	}
	if !reYearLeading.MatchString(date) || date == epochDate {
		return post, false
	}
	post.Date = date
	return post, true
}

// NormalizeDate converts a front matter date value to YYYY-MM-DD. Strings
// are truncated to ten characters with '/' and '.' separators replaced by
// '-'. Values that still do not look canonical are handed to dateparse; if
// that fails the truncated form is returned as is.
func NormalizeDate(v any) string {
	var raw string
	switch d := v.(type) {
	case time.Time:
		// Keep the calendar day as written, whatever its offset.
		return d.Format(dateLayout)
	case string:
		raw = strings.TrimSpace(d)
	default:
		raw = strings.TrimSpace(fmt.Sprint(d))
	}
	if raw == "" {
		return ""
	}

	s := raw
	if len(s) > 10 {
		s = s[:10]
	}
	s = strings.NewReplacer("/", "-", ".", "-").Replace(s)
	if reCanonicalDate.MatchString(s) {
		return s
	}
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t.Format(dateLayout)
	}
	return s
}

func dateFromName(name string) string {
	if m := reFilenameDate.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

func stringField(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// scalarField stringifies a YAML or TOML scalar, so `title: 2024` reads as
// "2024". Lists and tables yield "".
func scalarField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t)
	}
	return ""
}

// tagField accepts either the comma-separated form or a YAML list.
func tagField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	}
	return ""
}

func numberField(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return f
		}
	}
	return 0
}
