package table

import (
	"slices"
	"strings"

	"github.com/matheuskafuri/articles/internal/article"
)

// Matches reports whether any field of a contains filter, ignoring case.
// An empty filter matches everything.
func Matches(a article.Article, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, f := range article.Fields() {
		if strings.Contains(strings.ToLower(f.Text(a)), needle) {
			return true
		}
	}
	return false
}

// Derive returns the rows to display for s: the articles of c that match
// the filter, ordered by the sort column and direction. The result is a
// fresh slice.
func Derive(c article.Collection, s State) []article.Article {
	rows := c.Items()
	kept := rows[:0]
	for _, a := range rows {
		if Matches(a, s.FilterText) {
			kept = append(kept, a)
		}
	}

	sortRows(kept, s.SortColumn, s.SortDirection)
	return kept
}

func sortRows(rows []article.Article, column article.Field, dir Direction) {
	desc := dir == Descending
	slices.SortStableFunc(rows, func(a, b article.Article) int {
		cmp := column.Compare(a, b)
		if desc {
			return -cmp
		}
		return cmp
	})
}

// SelectedArticles resolves the selected URLs against c and returns them
// in sort order. The filter does not apply, so hidden selections are kept;
// URLs missing from c are dropped. Ties keep selection order.
func SelectedArticles(c article.Collection, s State) []article.Article {
	var out []article.Article
	for _, url := range s.Selected.URLs() {
		if a, ok := c.Lookup(url); ok {
			out = append(out, a)
		}
	}
	sortRows(out, s.SortColumn, s.SortDirection)
	return out
}
