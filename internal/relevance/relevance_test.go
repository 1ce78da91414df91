package relevance

import (
	"math"
	"strings"
	"testing"
	"time"
)

var now = time.Date(2024, 9, 20, 12, 0, 0, 0, time.UTC)

func TestEstimateRecentArticle(t *testing.T) {
	input := Input{
		Title:     "The Future of AI: Trends to Watch",
		Summary:   "An overview of emerging trends in artificial intelligence and how they will shape data privacy, security and web development. " + nWords(40),
		Source:    "Tech Times",
		Published: now.Add(-24 * time.Hour),
	}
	rating := Estimate(input, SourceWeights{"Tech Times": 0.9}, now)
	if rating < 3.0 {
		t.Errorf("expected high rating for fresh, weighted article, got %.1f", rating)
	}
	if rating > MaxRating {
		t.Errorf("rating should not exceed %.1f, got %.1f", MaxRating, rating)
	}
}

func TestEstimateOldArticleRatesLower(t *testing.T) {
	input := Input{
		Title:     "Understanding Data Privacy",
		Summary:   nWords(20),
		Source:    "Data Digest",
		Published: now,
	}
	fresh := Estimate(input, nil, now)
	input.Published = now.Add(-180 * 24 * time.Hour)
	old := Estimate(input, nil, now)
	if old >= fresh {
		t.Errorf("expected old article (%.1f) below fresh one (%.1f)", old, fresh)
	}
}

func TestRecencyHalfLife(t *testing.T) {
	if got := recencyScore(now, now); got < 0.99 {
		t.Errorf("recency at publish should be ~1.0, got %.2f", got)
	}
	month := recencyScore(now.Add(-30*24*time.Hour), now)
	if math.Abs(month-0.5) > 0.01 {
		t.Errorf("recency at 30d should be ~0.5, got %.2f", month)
	}
	if got := recencyScore(now.Add(24*time.Hour), now); got < 0.99 {
		t.Errorf("future dates should clamp to 1.0, got %.2f", got)
	}
	if got := recencyScore(time.Time{}, now); got != 0 {
		t.Errorf("zero time should score 0, got %.2f", got)
	}
}

func TestDefaultSourceWeight(t *testing.T) {
	if score := sourceScore("Unknown", nil); score != 0.5 {
		t.Errorf("expected default 0.5, got %.2f", score)
	}
	if score := sourceScore("Unknown", SourceWeights{"Other": 0.9}); score != 0.5 {
		t.Errorf("expected default 0.5 for missing source, got %.2f", score)
	}
}

func TestDepthScoreBands(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{2, 0.2},
		{20, 0.6},
		{45, 1.0},
	}
	for _, tt := range tests {
		if got := depthScore(nWords(tt.words)); got != tt.want {
			t.Errorf("depthScore(%d words) = %.1f, want %.1f", tt.words, got, tt.want)
		}
	}
}

func TestKeywordScore(t *testing.T) {
	if got := keywordScore("", ""); got != 0 {
		t.Errorf("expected 0 for empty text, got %.2f", got)
	}
	if got := keywordScore("AI, data & privacy!", ""); got != 1.0 {
		t.Errorf("expected saturated keyword score, got %.2f", got)
	}
}

func TestBreakdownComponents(t *testing.T) {
	input := Input{Title: "Cloud Infrastructure", Summary: nWords(45), Source: "Ops Weekly", Published: now}
	b := EstimateWithBreakdown(input, SourceWeights{"Ops Weekly": 0.8}, now)
	if b.SourceWeight != 0.8 {
		t.Errorf("source weight should be 0.8, got %.2f", b.SourceWeight)
	}
	if b.Depth != 1.0 {
		t.Errorf("depth should be 1.0, got %.2f", b.Depth)
	}
	if b.Final < 0 || b.Final > MaxRating {
		t.Errorf("final rating out of range: %.1f", b.Final)
	}
	if math.Abs(b.Final*10-math.Round(b.Final*10)) > 1e-9 {
		t.Errorf("final rating should have one decimal, got %v", b.Final)
	}
}

func TestEstimateZeroInput(t *testing.T) {
	rating := Estimate(Input{}, nil, now)
	if rating < 0 || rating > MaxRating {
		t.Errorf("rating out of range for zero input: %.1f", rating)
	}
}

func nWords(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
