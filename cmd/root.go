package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig        string
	flagFilter        string
	flagSort          string
	flagOrder         string
	flagSource        string
	flagPrintSelected bool
	flagLogFile       string
)

var rootCmd = &cobra.Command{
	Use:   "articles",
	Short: "Browse articles in a sortable, filterable terminal table",
	Long: `articles shows a collection of articles as an interactive table.

Type / to filter across every field, sort by any column, and select rows
with space. With --print-selected the selected URLs are written to stdout
on exit.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	addViewFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write JSON logs to this file")
	rootCmd.Flags().BoolVar(&flagPrintSelected, "print-selected", false, "print selected article URLs on exit")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
}

// addViewFlags registers the flags that shape the initial table view.
func addViewFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagFilter, "filter", "", "initial filter text")
	c.Flags().StringVar(&flagSort, "sort", "", "sort column (contentSource, title, url, summary, relevanceRating, date)")
	c.Flags().StringVar(&flagOrder, "order", "", "sort direction (asc, desc)")
	c.Flags().StringVar(&flagSource, "source", "", "article source (sample, catalog)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "articles %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
