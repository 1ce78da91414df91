package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/matheuskafuri/articles/internal/article"
	"github.com/matheuskafuri/articles/internal/config"
	"github.com/matheuskafuri/articles/internal/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered, sorted table without the interactive view",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		collection, state, err := loadView(cfg)
		if err != nil {
			return err
		}
		return writeTable(cmd.OutOrStdout(), table.Derive(collection, state))
	},
}

func init() {
	addViewFlags(listCmd)
}

func writeTable(out io.Writer, rows []article.Article) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	cols := append(article.Columns(), article.URL)
	for i, f := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, f.Label())
	}
	fmt.Fprintln(tw)
	for _, a := range rows {
		for i, f := range cols {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, f.Text(a))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
