package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/table"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	SourceSample  = "sample"
	SourceCatalog = "catalog"
)

type SortConfig struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction"`
}

type Config struct {
	Source        string             `yaml:"source"`
	Catalog       string             `yaml:"catalog,omitempty"`
	Sort          SortConfig         `yaml:"sort"`
	SummaryLength int                `yaml:"summary_length,omitempty"`
	SourceWeights map[string]float64 `yaml:"source_weights,omitempty"`
}

// InitialState returns the table state the config asks to start with.
// Unset values fall back to the table defaults.
func (c *Config) InitialState() (table.State, error) {
	s := table.NewState()
	if c.Sort.Column != "" {
		col, err := article.ParseField(c.Sort.Column)
		if err != nil {
			return s, fmt.Errorf("sort.column: %w", err)
		}
		s.SortColumn = col
	}
	if c.Sort.Direction != "" {
		dir, err := table.ParseDirection(c.Sort.Direction)
		if err != nil {
			return s, fmt.Errorf("sort.direction: %w", err)
		}
		s.SortDirection = dir
	}
	return s, nil
}

// CatalogPath returns the configured catalog path or the XDG default.
func (c *Config) CatalogPath() string {
	if c.Catalog != "" {
		return c.Catalog
	}
	return DefaultCatalogPath()
}

// GetSummaryLength returns the import summary limit, defaulting to 300.
func (c *Config) GetSummaryLength() int {
	if c.SummaryLength <= 0 {
		return 300
	}
	return c.SummaryLength
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "articles", "config.yaml")
}

func DefaultCatalogPath() string {
	return filepath.Join(xdg.CacheHome, "articles", "articles.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (DefaultConfigPath when empty). A missing
// file yields the embedded defaults, which are also written to path.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply.
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Source {
	case SourceSample, SourceCatalog:
	default:
		return fmt.Errorf("unknown source %q (valid: sample, catalog)", cfg.Source)
	}
	if _, err := cfg.InitialState(); err != nil {
		return err
	}
	if cfg.SummaryLength < 0 {
		return fmt.Errorf("summary_length must not be negative, got %d", cfg.SummaryLength)
	}
	for name, w := range cfg.SourceWeights {
		if w < 0 || w > 1 {
			return fmt.Errorf("source_weights %q: weight must be between 0 and 1, got %v", name, w)
		}
	}
	return nil
}
