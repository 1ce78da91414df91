package article

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrDuplicateURL = errors.New("duplicate article url")
	ErrMissingURL   = errors.New("article url is required")
	ErrInvalidDate  = errors.New("article date must be YYYY-MM-DD")
)

// Article is one row of the table. URL identifies it within a Collection.
type Article struct {
	ContentSource   string  `yaml:"contentSource"`
	Title           string  `yaml:"title"`
	URL             string  `yaml:"url"`
	Summary         string  `yaml:"summary"`
	RelevanceRating float64 `yaml:"relevanceRating"`
	Date            string  `yaml:"date"`
}

// Field enumerates the article attributes that can be filtered and sorted.
type Field int

const (
	ContentSource Field = iota
	Title
	URL
	Summary
	RelevanceRating
	Date
)

type fieldSpec struct {
	name    string
	label   string
	text    func(Article) string
	compare func(a, b Article) int
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var fields = [...]fieldSpec{
	ContentSource: {
		name:    "contentSource",
		label:   "Content Source",
		text:    func(a Article) string { return a.ContentSource },
		compare: func(a, b Article) int { return compareStrings(a.ContentSource, b.ContentSource) },
	},
	Title: {
		name:    "title",
		label:   "Title",
		text:    func(a Article) string { return a.Title },
		compare: func(a, b Article) int { return compareStrings(a.Title, b.Title) },
	},
	URL: {
		name:    "url",
		label:   "URL",
		text:    func(a Article) string { return a.URL },
		compare: func(a, b Article) int { return compareStrings(a.URL, b.URL) },
	},
	Summary: {
		name:    "summary",
		label:   "Summary",
		text:    func(a Article) string { return a.Summary },
		compare: func(a, b Article) int { return compareStrings(a.Summary, b.Summary) },
	},
	RelevanceRating: {
		name:  "relevanceRating",
		label: "Relevance",
		text:  func(a Article) string { return FormatRating(a.RelevanceRating) },
		compare: func(a, b Article) int {
			switch {
			case a.RelevanceRating < b.RelevanceRating:
				return -1
			case a.RelevanceRating > b.RelevanceRating:
				return 1
			}
			return 0
		},
	},
	Date: {
		name:    "date",
		label:   "Date",
		text:    func(a Article) string { return a.Date },
		compare: func(a, b Article) int { return compareStrings(a.Date, b.Date) },
	},
}

// Fields returns every field in declaration order.
func Fields() []Field {
	return []Field{ContentSource, Title, URL, Summary, RelevanceRating, Date}
}

// Columns returns the fields shown as table columns, in display order.
func Columns() []Field {
	return []Field{ContentSource, Title, Summary, RelevanceRating, Date}
}

func (f Field) valid() bool {
	return f >= 0 && int(f) < len(fields)
}

// String returns the field's canonical name, e.g. "relevanceRating".
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fields[f].name
}

// Label returns the column header text.
func (f Field) Label() string {
	if !f.valid() {
		return ""
	}
	return fields[f].label
}

// Text returns the field value of a as display text.
func (f Field) Text(a Article) string {
	return fields[f].text(a)
}

// Compare orders a and b by this field: numerically for the rating,
// lexicographically for everything else.
func (f Field) Compare(a, b Article) int {
	return fields[f].compare(a, b)
}

var fieldAliases = map[string]Field{
	"source":    ContentSource,
	"relevance": RelevanceRating,
	"rating":    RelevanceRating,
	"link":      URL,
}

// ParseField resolves a field name. Matching ignores case, underscores
// and hyphens, so "relevance_rating" and "RelevanceRating" both work.
func ParseField(name string) (Field, error) {
	key := normalizeName(name)
	for i, fs := range fields {
		if normalizeName(fs.name) == key {
			return Field(i), nil
		}
	}
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// FormatRating renders a rating in its shortest decimal form (4.8, 5).
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
