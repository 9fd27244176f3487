package stats

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"catalogseed/internal/review"
)

// Lookup answers accessor questions cache first, static reviews second.
// The cache is chosen once at construction; nil means static only.
type Lookup struct {
	static *Static
	set    *review.Set
	cache  Source
	log    *zap.Logger
}

func NewLookup(set *review.Set, cache Source, log *zap.Logger) *Lookup {
	if set == nil {
		set = review.NewSet()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Lookup{static: NewStatic(set), set: set, cache: cache, log: log}
}

// Reviews returns a copy of the static reviews for slug, or an empty slice.
func (l *Lookup) Reviews(slug string) []review.Review {
	reviews, _ := l.set.Get(slug)
	return append([]review.Review{}, reviews...)
}

// Rating is the average rating, 0 when nothing is known.
func (l *Lookup) Rating(ctx context.Context, slug string) float64 {
	if st, ok := l.cached(ctx, slug); ok && st.ReviewCount > 0 {
		return st.AverageRating
	}
	st, _ := l.static.ReviewStats(ctx, slug)
	return st.AverageRating
}

// ReviewCount is the number of reviews for slug.
func (l *Lookup) ReviewCount(ctx context.Context, slug string) int {
	if st, ok := l.cached(ctx, slug); ok && st.ReviewCount > 0 {
		return st.ReviewCount
	}
	return len(l.Reviews(slug))
}

// HasVerifiedReviews reports whether the product should show the verified
// badge: any cached verified or cached review, otherwise any static review.
func (l *Lookup) HasVerifiedReviews(ctx context.Context, slug string) bool {
	if st, ok := l.cached(ctx, slug); ok && (st.VerifiedCount > 0 || st.ReviewCount > 0) {
		return true
	}
	return len(l.Reviews(slug)) > 0
}

// Stats combines the accessors into one value.
func (l *Lookup) Stats(ctx context.Context, slug string) Stats {
	if st, ok := l.cached(ctx, slug); ok && st.ReviewCount > 0 {
		return st
	}
	st, _ := l.static.ReviewStats(ctx, slug)
	return st
}

func (l *Lookup) cached(ctx context.Context, slug string) (Stats, bool) {
	if l.cache == nil {
		return Stats{}, false
	}
	st, err := l.cache.ReviewStats(ctx, slug)
	if err != nil {
		if !errors.Is(err, ErrNotCached) {
			l.log.Debug("review stats cache failed, using static data", zap.String("slug", slug), zap.Error(err))
		}
		return Stats{}, false
	}
	return st, true
}
