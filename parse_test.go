package pubfolio

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"canonical", "2025-09-02", "2025-09-02"},
		{"slashes", "2025/09/02", "2025-09-02"},
		{"dots", "2025.09.02", "2025-09-02"},
		{"datetime truncated", "2026-01-25T10:00:00Z", "2026-01-25"},
		{"surrounding space", "  2025-09-02 ", "2025-09-02"},
		{"time value", time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC), "2024-02-29"},
		{"time value with offset", time.Date(2025, 9, 27, 23, 30, 0, 0, time.FixedZone("", -5*3600)), "2025-09-27"},
		{"long form", "September 2, 2025", "2025-09-02"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		wantOK   bool
		wantDate string
		check    func(t *testing.T, p Post)
	}{
		{
			name:     "full front matter",
			doc:      Document{Slug: "full", Body: []byte("---\ntitle: Full\ndate: 2025-09-02\ndescription: Desc\ntag: go, web\nreadingTimeMinutes: 4\n---\n# Body\n")},
			wantOK:   true,
			wantDate: "2025-09-02",
			check: func(t *testing.T, p Post) {
				if p.Title != "Full" || p.Description != "Desc" || p.Tag != "go, web" {
					t.Errorf("unexpected metadata: %+v", p)
				}
				if p.ReadingTimeMinutes != 4 {
					t.Errorf("expected reading time 4, got %v", p.ReadingTimeMinutes)
				}
				if strings.TrimSpace(p.Content) != "# Body" {
					t.Errorf("expected body without front matter, got %q", p.Content)
				}
			},
		},
		{
			name:     "tag list",
			doc:      Document{Slug: "list", Body: []byte("---\ndate: 2025-01-01\ntag:\n  - go\n  - web\n---\n")},
			wantOK:   true,
			wantDate: "2025-01-01",
			check: func(t *testing.T, p Post) {
				if p.Tag != "go, web" {
					t.Errorf("expected joined tags, got %q", p.Tag)
				}
				if p.Title != "list" {
					t.Errorf("expected slug as title, got %q", p.Title)
				}
			},
		},
		{
			name:     "date from file name",
			doc:      Document{Slug: "2025-12-01-seeded-iching-engine", Body: []byte("---\ntitle: Seeded\n---\n")},
			wantOK:   true,
			wantDate: "2025-12-01",
		},
		{
			name:     "front matter date wins over file name",
			doc:      Document{Slug: "2020-01-01-old", Body: []byte("---\ndate: 2021-06-01\n---\n")},
			wantOK:   true,
			wantDate: "2021-06-01",
		},
		{
			name:   "no date",
			doc:    Document{Slug: "undated", Body: []byte("---\ntitle: Undated\n---\n")},
			wantOK: false,
		},
		{
			name:   "date without year",
			doc:    Document{Slug: "bad", Body: []byte("---\ndate: soon\n---\n")},
			wantOK: false,
		},
		{
			name:     "toml date with offset",
			doc:      Document{Slug: "toml", Body: []byte("+++\ntitle = \"Toml\"\ndate = 2025-09-27T23:30:00-05:00\n+++\nBody\n")},
			wantOK:   true,
			wantDate: "2025-09-27",
			check: func(t *testing.T, p Post) {
				if p.Title != "Toml" {
					t.Errorf("expected TOML title, got %q", p.Title)
				}
			},
		},
		{
			name:     "numeric title",
			doc:      Document{Slug: "numeric", Body: []byte("---\ntitle: 2024\ndate: 2024-12-31\n---\n")},
			wantOK:   true,
			wantDate: "2024-12-31",
			check: func(t *testing.T, p Post) {
				if p.Title != "2024" {
					t.Errorf("expected numeric title kept, got %q", p.Title)
				}
			},
		},
		{
			name:   "epoch date",
			doc:    Document{Slug: "epoch", Body: []byte("---\ndate: 1970-01-01\n---\n")},
			wantOK: false,
		},
		{
			name:     "no front matter",
			doc:      Document{Slug: "2024-03-03-plain", Body: []byte("Just text.\n")},
			wantOK:   true,
			wantDate: "2024-03-03",
			check: func(t *testing.T, p Post) {
				if strings.TrimSpace(p.Content) != "Just text." {
					t.Errorf("expected whole file as body, got %q", p.Content)
				}
			},
		},
		{
			name:     "malformed front matter",
			doc:      Document{Slug: "2024-04-04-broken", Body: []byte("---\ntitle: [unclosed\n---\nBody\n")},
			wantOK:   true,
			wantDate: "2024-04-04",
			check: func(t *testing.T, p Post) {
				if p.Title != "2024-04-04-broken" {
					t.Errorf("expected slug as title, got %q", p.Title)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParseDocument(tt.doc)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if p.Date != tt.wantDate {
				t.Errorf("date = %q, want %q", p.Date, tt.wantDate)
			}
			if p.Slug != tt.doc.Slug || p.Link != "/posts/"+tt.doc.Slug {
				t.Errorf("unexpected slug/link: %q %q", p.Slug, p.Link)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestScalarField(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{" Title ", "Title"},
		{2024, "2024"},
		{int64(7), "7"},
		{1.5, "1.5"},
		{true, "true"},
		{nil, ""},
		{[]any{"a"}, ""},
		{map[string]any{"a": 1}, ""},
	}
	for _, tt := range tests {
		if got := scalarField(tt.in); got != tt.want {
			t.Errorf("scalarField(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" go, ,web ,  ")
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("unexpected tags: %q", got)
	}
	if SplitTags("  ") != nil {
		t.Error("expected nil for blank input")
	}
}
