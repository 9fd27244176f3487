// Package stats answers per-product review questions from a cache of
// aggregated stats, falling back to generated static reviews.
package stats

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"catalogseed/internal/review"
)

// ErrNotCached is returned by a Source that has no stats for a slug.
var ErrNotCached = errors.New("stats: not cached")

// Stats is the aggregate the front end shows next to a product.
type Stats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	VerifiedCount int     `json:"verified_count"`
}

// Source looks up stats for one product.
type Source interface {
	ReviewStats(ctx context.Context, slug string) (Stats, error)
}

// Summarize aggregates reviews. The average is rounded to 2 decimals and is
// 0 for an empty slice. Static reviews carry no verification, so
// VerifiedCount stays 0.
func Summarize(reviews []review.Review) Stats {
	if len(reviews) == 0 {
		return Stats{}
	}
	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(2).Float64()
	return Stats{AverageRating: avg, ReviewCount: len(reviews)}
}

// Static serves stats computed from a review set.
type Static struct {
	set *review.Set
}

func NewStatic(set *review.Set) *Static {
	if set == nil {
		set = review.NewSet()
	}
	return &Static{set: set}
}

func (s *Static) ReviewStats(_ context.Context, slug string) (Stats, error) {
	reviews, ok := s.set.Get(slug)
	if !ok {
		return Stats{}, ErrNotCached
	}
	return Summarize(reviews), nil
}

// All returns stats for every slug in the set.
func (s *Static) All() map[string]Stats {
	out := make(map[string]Stats, s.set.Len())
	for _, slug := range s.set.Slugs() {
		reviews, _ := s.set.Get(slug)
		out[slug] = Summarize(reviews)
	}
	return out
}
