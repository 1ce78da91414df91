package cmd

import (
	"fmt"
	"time"

	"github.com/matheuskafuri/articles/internal/catalog"
	"github.com/matheuskafuri/articles/internal/config"
	"github.com/matheuskafuri/articles/internal/ingest"
	"github.com/spf13/cobra"
)

var flagPruneOlderThan string

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Add articles from YAML lists or RSS/Atom files to the catalog",
	Long: `Read article files from disk into the local catalog.

Files ending in .yaml or .yml hold a list of articles with the keys
contentSource, title, url, summary, relevanceRating and date. Any other
file is parsed as an RSS, Atom or JSON feed; feed items get an estimated
relevance rating. Articles with a URL already in the catalog are replaced.

Run "articles --source catalog" to browse the result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := openLogger(flagLogFile, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		db, err := catalog.Open(cfg.CatalogPath())
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer db.Close()

		opts := ingest.Options{
			SummaryLength: cfg.GetSummaryLength(),
			SourceWeights: cfg.SourceWeights,
			Now:           time.Now(),
		}
		total := 0
		for _, path := range args {
			res, err := ingest.ParseFile(path, opts)
			if err != nil {
				return err
			}
			if res.Skipped > 0 {
				logger.Warn("skipped feed items without a link", "file", path, "count", res.Skipped)
			}
			if err := db.Upsert(res.Articles); err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}
			logger.Info("imported file", "file", path, "articles", len(res.Articles))
			total += len(res.Articles)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d article(s) into %s.\n", total, cfg.CatalogPath())
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old articles from the catalog",
	Long: `Delete catalog articles dated before the cutoff and reclaim disk space.

The cutoff is --older-than before today (e.g. 90d, 720h).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagPruneOlderThan == "" {
			return fmt.Errorf("--older-than is required")
		}
		age, err := parseSince(flagPruneOlderThan)
		if err != nil {
			return fmt.Errorf("invalid --older-than value: %w", err)
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		db, err := catalog.Open(cfg.CatalogPath())
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer db.Close()

		deleted, err := db.Prune(time.Now().Add(-age))
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}

		out := cmd.OutOrStdout()
		if deleted == 0 {
			fmt.Fprintln(out, "Nothing to prune.")
		} else {
			fmt.Fprintf(out, "Pruned %d article(s) older than %s.\n", deleted, formatDuration(age))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		dbPath := cfg.CatalogPath()
		db, err := catalog.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer db.Close()

		count, size, err := db.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog: %s\n", dbPath)
		fmt.Fprintf(out, "Articles: %d\n", count)
		fmt.Fprintf(out, "Size: %s\n", formatBytes(size))
		return nil
	},
}

func init() {
	pruneCmd.Flags().StringVar(&flagPruneOlderThan, "older-than", "90d", "remove articles older than this (e.g., 90d, 720h)")
}

// parseSince accepts Go durations plus a day suffix ("7d").
func parseSince(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
