package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/catalog"
	"github.com/matheuskafuri/articles/internal/config"
	"github.com/matheuskafuri/articles/internal/table"
)

func resetViewFlags(t *testing.T) {
	t.Helper()
	flagFilter, flagSort, flagOrder, flagSource = "", "", "", ""
	t.Cleanup(func() {
		flagFilter, flagSort, flagOrder, flagSource = "", "", "", ""
	})
}

func TestParseSince(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		err   bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"90d", 90 * 24 * time.Hour, false},
		{"24h", 24 * time.Hour, false},
		{"2h30m", 2*time.Hour + 30*time.Minute, false},
		{"invalid", 0, true},
		{"", 0, true},
		{"d", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSince(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("parseSince(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSince(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSince(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatDuration(90 * 24 * time.Hour); got != "90d" {
		t.Errorf("formatDuration(90d) = %q", got)
	}
	if got := formatDuration(5 * time.Hour); got != "5h" {
		t.Errorf("formatDuration(5h) = %q", got)
	}

	bytesTests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range bytesTests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	rows := table.Derive(article.Samples(), table.NewState())
	if err := writeTable(&buf, rows); err != nil {
		t.Fatalf("writeTable: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows:\n%s", len(lines), buf.String())
	}
	for _, label := range []string{"Source", "Title", "Relevance", "Date", "URL"} {
		if !strings.Contains(lines[0], label) {
			t.Errorf("header %q missing %q", lines[0], label)
		}
	}
	if !strings.Contains(lines[1], "The Future of AI") || !strings.Contains(lines[1], "4.8") {
		t.Errorf("first row = %q, want the newest article", lines[1])
	}
	if !strings.Contains(lines[3], "https://webdevdaily.com/top-frameworks-2024") {
		t.Errorf("last row = %q, want the oldest article", lines[3])
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("got %d lines, want only the header", n)
	}
}

func TestLoadViewDefaults(t *testing.T) {
	resetViewFlags(t)
	cfg := &config.Config{Source: config.SourceSample}

	c, s, err := loadView(cfg)
	if err != nil {
		t.Fatalf("loadView: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("got %d articles, want 3 samples", c.Len())
	}
	if s.SortColumn != article.Date || s.SortDirection != table.Descending {
		t.Errorf("state = %v %v, want date desc", s.SortColumn, s.SortDirection)
	}
	if s.FilterText != "" || s.Selected.Len() != 0 {
		t.Errorf("state should start unfiltered with nothing selected")
	}
}

func TestLoadViewFlagsOverrideConfig(t *testing.T) {
	resetViewFlags(t)
	cfg := &config.Config{
		Source: config.SourceSample,
		Sort:   config.SortConfig{Column: "title", Direction: "desc"},
	}
	flagSort = "relevance"
	flagOrder = "asc"
	flagFilter = "privacy"

	c, s, err := loadView(cfg)
	if err != nil {
		t.Fatalf("loadView: %v", err)
	}
	if s.SortColumn != article.RelevanceRating || s.SortDirection != table.Ascending {
		t.Errorf("state = %v %v, want relevanceRating asc", s.SortColumn, s.SortDirection)
	}
	rows := table.Derive(c, s)
	if len(rows) != 1 || rows[0].Title != "Understanding Data Privacy in 2024" {
		t.Errorf("filtered rows = %v", rows)
	}
}

func TestLoadViewInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		set  func()
	}{
		{"sort", func() { flagSort = "author" }},
		{"order", func() { flagOrder = "sideways" }},
		{"source", func() { flagSource = "web" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViewFlags(t)
			tt.set()
			if _, _, err := loadView(&config.Config{Source: config.SourceSample}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadViewCatalog(t *testing.T) {
	resetViewFlags(t)
	dbPath := filepath.Join(t.TempDir(), "articles.db")

	db, err := catalog.Open(dbPath)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	if err := db.Upsert(article.Samples().Items()[:2]); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	db.Close()

	flagSource = config.SourceCatalog
	c, _, err := loadView(&config.Config{Source: config.SourceSample, Catalog: dbPath})
	if err != nil {
		t.Fatalf("loadView: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("got %d articles, want 2 from the catalog", c.Len())
	}
}
