package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/table"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Source != SourceSample {
		t.Errorf("expected default source sample, got %q", cfg.Source)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestDefaultInitialState(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	s, err := cfg.InitialState()
	if err != nil {
		t.Fatalf("InitialState: %v", err)
	}
	if s.SortColumn != article.Date || s.SortDirection != table.Descending {
		t.Errorf("expected date desc, got %v %v", s.SortColumn, s.SortDirection)
	}
}

func TestInitialStateEmptyConfig(t *testing.T) {
	cfg := &Config{}
	s, err := cfg.InitialState()
	if err != nil {
		t.Fatalf("InitialState: %v", err)
	}
	def := table.NewState()
	if s.SortColumn != def.SortColumn || s.SortDirection != def.SortDirection || s.FilterText != "" {
		t.Errorf("empty config should yield table defaults, got %+v", s)
	}
}

func TestInitialStateCustom(t *testing.T) {
	cfg := &Config{Sort: SortConfig{Column: "relevance_rating", Direction: "asc"}}
	s, err := cfg.InitialState()
	if err != nil {
		t.Fatalf("InitialState: %v", err)
	}
	if s.SortColumn != article.RelevanceRating || s.SortDirection != table.Ascending {
		t.Errorf("expected relevanceRating asc, got %v %v", s.SortColumn, s.SortDirection)
	}
}

func TestGetSummaryLength(t *testing.T) {
	if got := (&Config{}).GetSummaryLength(); got != 300 {
		t.Errorf("expected default 300, got %d", got)
	}
	if got := (&Config{SummaryLength: 120}).GetSummaryLength(); got != 120 {
		t.Errorf("expected 120, got %d", got)
	}
}

func TestCatalogPath(t *testing.T) {
	if got := (&Config{Catalog: "/tmp/x.db"}).CatalogPath(); got != "/tmp/x.db" {
		t.Errorf("expected override, got %s", got)
	}
	if got := (&Config{}).CatalogPath(); !strings.HasSuffix(got, filepath.Join("articles", "articles.db")) {
		t.Errorf("unexpected default catalog path %s", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `source: catalog
sort:
  column: title
source_weights:
  Data Digest: 0.9
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceCatalog {
		t.Errorf("expected catalog source, got %s", cfg.Source)
	}
	if cfg.Sort.Column != "title" {
		t.Errorf("expected title, got %s", cfg.Sort.Column)
	}
	// Unset keys keep their embedded defaults.
	if cfg.Sort.Direction != "desc" {
		t.Errorf("expected default direction desc, got %q", cfg.Sort.Direction)
	}
	if cfg.SourceWeights["Data Digest"] != 0.9 {
		t.Errorf("expected weight 0.9, got %v", cfg.SourceWeights["Data Digest"])
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceSample {
		t.Errorf("expected defaults when config doesn't exist, got source %q", cfg.Source)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("sort: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateUnknownSource(t *testing.T) {
	if err := validate(&Config{Source: "http"}); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestValidateUnknownColumn(t *testing.T) {
	cfg := &Config{Source: SourceSample, Sort: SortConfig{Column: "author"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown sort column")
	}
}

func TestValidateUnknownDirection(t *testing.T) {
	cfg := &Config{Source: SourceSample, Sort: SortConfig{Direction: "sideways"}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestValidateWeightRange(t *testing.T) {
	cfg := &Config{Source: SourceSample, SourceWeights: map[string]float64{"A": 1.5}}
	if err := validate(cfg); err == nil {
		t.Error("expected error for weight above 1")
	}
	cfg.SourceWeights["A"] = 0.3
	if err := validate(cfg); err != nil {
		t.Errorf("unexpected error for valid weight: %v", err)
	}
}

func TestValidateNegativeSummaryLength(t *testing.T) {
	if err := validate(&Config{Source: SourceSample, SummaryLength: -1}); err == nil {
		t.Error("expected error for negative summary_length")
	}
}
