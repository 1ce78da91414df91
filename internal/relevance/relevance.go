package relevance

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

// SourceWeights maps content sources to their weight (0.0–1.0).
type SourceWeights map[string]float64

// Input holds the data needed to rate an article.
type Input struct {
	Title     string
	Summary   string
	Source    string
	Published time.Time
}

// Breakdown shows how each component contributed to the rating.
type Breakdown struct {
	Recency        float64
	SourceWeight   float64
	Depth          float64
	KeywordDensity float64
	Final          float64
}

const (
	weightRecency  = 0.30
	weightSource   = 0.25
	weightDepth    = 0.25
	weightKeywords = 0.20
)

// Estimate rates an article from 0.0 to 5.0 with one decimal.
func Estimate(input Input, weights SourceWeights, now time.Time) float64 {
	return EstimateWithBreakdown(input, weights, now).Final
}

// EstimateWithBreakdown rates an article and reports the component scores.
func EstimateWithBreakdown(input Input, weights SourceWeights, now time.Time) Breakdown {
	b := Breakdown{
		Recency:        recencyScore(input.Published, now),
		SourceWeight:   sourceScore(input.Source, weights),
		Depth:          depthScore(input.Summary),
		KeywordDensity: keywordScore(input.Title, input.Summary),
	}
	raw := b.Recency*weightRecency +
		b.SourceWeight*weightSource +
		b.Depth*weightDepth +
		b.KeywordDensity*weightKeywords
	b.Final = math.Round(raw*MaxRating*10) / 10
	return b
}

// recencyScore halves every 30 days: 1.0 at publish, 0.5 a month later.
func recencyScore(published, now time.Time) float64 {
	if published.IsZero() {
		return 0.0
	}
	days := now.Sub(published).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Exp(-math.Ln2 / 30 * days)
}

// sourceScore looks up the source weight, defaulting to 0.5.
func sourceScore(source string, weights SourceWeights) float64 {
	if w, ok := weights[source]; ok {
		return w
	}
	return 0.5
}

// depthScore scores on summary word count. Imported summaries are
// truncated, so the bands are short.
func depthScore(summary string) float64 {
	words := len(strings.Fields(summary))
	switch {
	case words >= 40:
		return 1.0
	case words >= 15:
		return 0.6
	default:
		return 0.2
	}
}

var topicKeywords = map[string]bool{
	"ai": true, "artificial": true, "intelligence": true, "machine": true,
	"learning": true, "model": true, "data": true, "privacy": true,
	"security": true, "regulation": true, "regulations": true,
	"web": true, "framework": true, "frameworks": true, "development": true,
	"cloud": true, "infrastructure": true, "database": true, "performance": true,
	"scaling": true, "architecture": true, "distributed": true, "analysis": true,
	"trends": true, "open": true, "source": true, "api": true,
}

// keywordScore returns the density of topic keywords (0.0–1.0).
func keywordScore(title, summary string) float64 {
	text := strings.ToLower(title + " " + summary)
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return 0.0
	}

	hits := 0
	for _, w := range words {
		if topicKeywords[w] {
			hits++
		}
	}
	// 10%+ density counts as full marks.
	score := float64(hits) / float64(len(words)) * 10
	if score > 1.0 {
		score = 1.0
	}
	return score
}
