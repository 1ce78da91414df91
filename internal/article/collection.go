package article

import "fmt"

// Collection is an immutable set of articles keyed by URL.
type Collection struct {
	items []Article
}

// NewCollection copies items into a Collection. Every article needs a
// URL and no two may share one.
func NewCollection(items []Article) (Collection, error) {
	seen := make(map[string]bool, len(items))
	out := make([]Article, len(items))
	for i, a := range items {
		if a.URL == "" {
			return Collection{}, fmt.Errorf("article %d (%q): %w", i, a.Title, ErrMissingURL)
		}
		if seen[a.URL] {
			return Collection{}, fmt.Errorf("%w: %s", ErrDuplicateURL, a.URL)
		}
		seen[a.URL] = true
		out[i] = a
	}
	return Collection{items: out}, nil
}

// Items returns a copy of the articles in insertion order.
func (c Collection) Items() []Article {
	out := make([]Article, len(c.items))
	copy(out, c.items)
	return out
}

func (c Collection) Len() int {
	return len(c.items)
}

// Lookup finds an article by URL.
func (c Collection) Lookup(url string) (Article, bool) {
	for _, a := range c.items {
		if a.URL == url {
			return a, true
		}
	}
	return Article{}, false
}

var samples = [...]Article{
	{
		ContentSource:   "John Doe / Tech Times",
		Title:           "The Future of AI: Trends to Watch",
		URL:             "https://techtimes.com/future-ai-trends",
		Summary:         "An overview of emerging trends in artificial intelligence and how they will shape various industries.",
		RelevanceRating: 4.8,
		Date:            "2024-09-18",
	},
	{
		ContentSource:   "Jane Smith / Data Digest",
		Title:           "Understanding Data Privacy in 2024",
		URL:             "https://datadigest.com/data-privacy-2024",
		Summary:         "A detailed analysis of the changing landscape of data privacy regulations globally.",
		RelevanceRating: 4.5,
		Date:            "2024-09-15",
	},
	{
		ContentSource:   "Emily Clarke / Web Developer Daily",
		Title:           "Top Web Development Frameworks in 2024",
		URL:             "https://webdevdaily.com/top-frameworks-2024",
		Summary:         "A comprehensive list of the most popular web development frameworks and their key features.",
		RelevanceRating: 4.9,
		Date:            "2024-09-14",
	},
}

// Samples returns the built-in three-article collection.
func Samples() Collection {
	c, err := NewCollection(samples[:])
	if err != nil {
		panic(err) // static data
	}
	return c
}
