package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"catalogseed/internal/review"
)

// Run identifies one generate-reviews invocation.
type Run struct {
	ID        uuid.UUID
	Seed      int64
	Style     string
	CreatedAt time.Time
}

// NewRun stamps a fresh run id and the current UTC time.
func NewRun(seed int64, style string) Run {
	return Run{ID: uuid.New(), Seed: seed, Style: style, CreatedAt: time.Now().UTC()}
}

var reviewSchema = []string{
	`CREATE TABLE IF NOT EXISTS review_runs (
		run_id TEXT PRIMARY KEY,
		seed BIGINT NOT NULL,
		style TEXT NOT NULL,
		products INTEGER NOT NULL,
		reviews INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_reviews (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		slug TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		rating INTEGER NOT NULL,
		date TEXT NOT NULL,
		comment TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_reviews_slug ON product_reviews(slug)`,
}

// WriteReviews records run and every review in set. Earlier runs are kept.
func (s *Store) WriteReviews(ctx context.Context, run Run, set *review.Set) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range reviewSchema {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		s.bind(`INSERT INTO review_runs (run_id, seed, style, products, reviews, created_at) VALUES (?,?,?,?,?,?)`),
		run.ID.String(), run.Seed, run.Style, set.Len(), set.Total(), run.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.bind(`INSERT INTO product_reviews (run_id, seq, slug, position, name, rating, date, comment) VALUES (?,?,?,?,?,?,?,?)`))
	if err != nil {
		return err
	}
	defer stmt.Close()
	seq := 0
	for _, slug := range set.Slugs() {
		reviews, _ := set.Get(slug)
		for i, r := range reviews {
			if _, err := stmt.ExecContext(ctx, run.ID.String(), seq, slug, i, r.Name, r.Rating, r.Date, r.Comment); err != nil {
				return fmt.Errorf("insert review %s/%d: %w", slug, i, err)
			}
			seq++
		}
	}
	return tx.Commit()
}

// LoadReviews reads back the reviews of one run in their original order.
func (s *Store) LoadReviews(ctx context.Context, runID uuid.UUID) (*review.Set, error) {
	rows, err := s.db.QueryContext(ctx,
		s.bind(`SELECT slug, name, rating, date, comment FROM product_reviews WHERE run_id = ? ORDER BY seq`),
		runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := review.NewSet()
	for rows.Next() {
		var slug string
		var r review.Review
		if err := rows.Scan(&slug, &r.Name, &r.Rating, &r.Date, &r.Comment); err != nil {
			return nil, err
		}
		existing, _ := set.Get(slug)
		set.Put(slug, append(existing, r))
	}
	return set, rows.Err()
}
