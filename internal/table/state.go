// Package table holds the view state of the article table and the pure
// transitions over it. Nothing here renders; the tui package draws
// whatever Derive returns.
package table

import (
	"fmt"
	"strings"

	"github.com/matheuskafuri/articles/internal/article"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q (valid: asc, desc)", s)
}

// Selection is an insertion-ordered set of article URLs. Methods never
// modify the receiver's backing array.
type Selection struct {
	urls []string
}

func (s Selection) Contains(url string) bool {
	for _, u := range s.urls {
		if u == url {
			return true
		}
	}
	return false
}

func (s Selection) Len() int {
	return len(s.urls)
}

// URLs returns the selected URLs in the order they were selected.
func (s Selection) URLs() []string {
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

func (s Selection) with(url string) Selection {
	out := make([]string, len(s.urls), len(s.urls)+1)
	copy(out, s.urls)
	return Selection{urls: append(out, url)}
}

func (s Selection) without(url string) Selection {
	out := make([]string, 0, len(s.urls))
	for _, u := range s.urls {
		if u != url {
			out = append(out, u)
		}
	}
	return Selection{urls: out}
}

// State is everything the user can change about the table.
type State struct {
	SortColumn    article.Field
	SortDirection Direction
	FilterText    string
	Selected      Selection
}

// NewState returns the initial state: newest first, no filter, nothing selected.
func NewState() State {
	return State{
		SortColumn:    article.Date,
		SortDirection: Descending,
	}
}

// RequestSort flips the direction when column is already the sort column,
// otherwise switches to column in ascending order.
func (s State) RequestSort(column article.Field) State {
	if column == s.SortColumn {
		s.SortDirection = s.SortDirection.Flip()
		return s
	}
	s.SortColumn = column
	s.SortDirection = Ascending
	return s
}

// WithFilter replaces the filter text. The selection is kept as is.
func (s State) WithFilter(text string) State {
	s.FilterText = text
	return s
}

// ToggleOne adds url to the selection, or removes it if already present.
// Visibility under the current filter does not matter.
func (s State) ToggleOne(url string) State {
	if s.Selected.Contains(url) {
		s.Selected = s.Selected.without(url)
	} else {
		s.Selected = s.Selected.with(url)
	}
	return s
}

// ToggleAll clears the selection when its size equals the number of
// visible rows, otherwise replaces it with exactly the visible URLs.
func (s State) ToggleAll(visible []article.Article) State {
	if s.AllSelected(visible) {
		s.Selected = Selection{}
		return s
	}
	urls := make([]string, len(visible))
	for i, a := range visible {
		urls[i] = a.URL
	}
	s.Selected = Selection{urls: urls}
	return s
}

// AllSelected reports the select-all checkbox state. It compares counts
// only, not membership.
func (s State) AllSelected(visible []article.Article) bool {
	return s.Selected.Len() == len(visible)
}
