package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/catalog"
	"github.com/matheuskafuri/articles/internal/config"
	"github.com/matheuskafuri/articles/internal/table"
	"github.com/matheuskafuri/articles/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	collection, state, err := loadView(cfg)
	if err != nil {
		return err
	}
	logger.Info("starting table", "articles", collection.Len(), "sort", state.SortColumn.String(), "order", state.SortDirection.String())

	final, err := tui.Run(tui.RunOpts{
		Collection: collection,
		State:      state,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if flagPrintSelected {
		for _, a := range table.SelectedArticles(collection, final) {
			fmt.Fprintln(cmd.OutOrStdout(), a.URL)
		}
	}
	return nil
}

// loadView resolves the article collection and initial table state from
// config and flags. Flags win over config.
func loadView(cfg *config.Config) (article.Collection, table.State, error) {
	state, err := cfg.InitialState()
	if err != nil {
		return article.Collection{}, state, fmt.Errorf("config: %w", err)
	}
	if flagSort != "" {
		col, err := article.ParseField(flagSort)
		if err != nil {
			return article.Collection{}, state, fmt.Errorf("invalid --sort value: %w", err)
		}
		state.SortColumn = col
	}
	if flagOrder != "" {
		dir, err := table.ParseDirection(flagOrder)
		if err != nil {
			return article.Collection{}, state, fmt.Errorf("invalid --order value: %w", err)
		}
		state.SortDirection = dir
	}
	state = state.WithFilter(flagFilter)

	source := cfg.Source
	if flagSource != "" {
		source = flagSource
	}

	switch source {
	case config.SourceSample, "":
		return article.Samples(), state, nil
	case config.SourceCatalog:
		db, err := catalog.Open(cfg.CatalogPath())
		if err != nil {
			return article.Collection{}, state, fmt.Errorf("opening catalog: %w", err)
		}
		defer db.Close()
		c, err := db.Collection()
		if err != nil {
			return article.Collection{}, state, fmt.Errorf("loading catalog: %w", err)
		}
		return c, state, nil
	default:
		return article.Collection{}, state, fmt.Errorf("invalid --source value %q (valid: sample, catalog)", source)
	}
}

// openLogger returns a JSON logger writing to path, or a text logger on
// fallback when path is empty.
func openLogger(path string, fallback io.Writer) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(fallback, &slog.HandlerOptions{Level: slog.LevelWarn})), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
