package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"catalogseed/internal/catalog"
	"catalogseed/internal/review"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "catalog.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "user@/db")
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestBind(t *testing.T) {
	pg := &Store{driver: DriverPostgres}
	if got := pg.bind("INSERT INTO t (a,b,c) VALUES (?,?,?)"); got != "INSERT INTO t (a,b,c) VALUES ($1,$2,$3)" {
		t.Fatalf("postgres bind = %q", got)
	}
	lite := &Store{driver: DriverSQLite}
	if got := lite.bind("SELECT ? , ?"); got != "SELECT ? , ?" {
		t.Fatalf("sqlite bind = %q", got)
	}
	if got := placeholders(3); got != "?,?,?" {
		t.Fatalf("placeholders(3) = %q", got)
	}
}

func TestWriteProductsReplacesTable(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	if err := s.WriteProducts(ctx, catalog.Builtin()); err != nil {
		t.Fatalf("WriteProducts: %v", err)
	}
	small := []catalog.Product{
		{Name: "Face Serum", Slug: "nefol-face-serum", Category: catalog.CategoryFace, Type: catalog.TypeSerum, Ingredients: []string{"Aprajita (Blue Tea)", "Vitamin C"}},
		{Name: "Hair Oil", Slug: "nefol-hair-oil", Category: catalog.CategoryHair, Type: catalog.TypeOil, Ingredients: []string{"Bhringraj"}},
	}
	if err := s.WriteProducts(ctx, small); err != nil {
		t.Fatalf("WriteProducts (second run): %v", err)
	}

	counts, err := s.CountProducts(ctx)
	if err != nil {
		t.Fatalf("CountProducts: %v", err)
	}
	if counts[catalog.CategoryFace] != 1 || counts[catalog.CategoryHair] != 1 || len(counts) != 2 {
		t.Fatalf("unexpected counts after replace: %v", counts)
	}

	var ingredients, primary string
	row := s.DB().QueryRowContext(ctx, `SELECT ingredients, primary_ingredient FROM catalog_products WHERE slug = ?`, "nefol-face-serum")
	if err := row.Scan(&ingredients, &primary); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if ingredients != `["Aprajita (Blue Tea)","Vitamin C"]` {
		t.Fatalf("ingredients = %s", ingredients)
	}
	if primary != catalog.DefaultIngredient {
		t.Fatalf("primary = %q", primary)
	}
}

func TestWriteProductsRejectsDuplicateSlug(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	dup := []catalog.Product{
		{Name: "A", Slug: "same", Category: catalog.CategoryFace, Type: catalog.TypeSerum, Ingredients: []string{"Rose"}},
		{Name: "B", Slug: "same", Category: catalog.CategoryFace, Type: catalog.TypeSerum, Ingredients: []string{"Rose"}},
	}
	if err := s.WriteProducts(ctx, dup); err == nil {
		t.Fatalf("expected primary key violation")
	}
}

func TestWriteReviewsKeepsRuns(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	set := review.NewSet()
	set.Put("zeta", []review.Review{
		{Name: "Priya K.", Rating: 5, Date: "2 days ago", Comment: "AHA & BHA"},
		{Name: "Rahul S.", Rating: 3, Date: "1 month ago", Comment: "ok"},
	})
	set.Put("alpha", []review.Review{{Name: "Kiran H.", Rating: 4, Date: "1 week ago", Comment: "nice"}})

	first := NewRun(789, "ingredient")
	if err := s.WriteReviews(ctx, first, set); err != nil {
		t.Fatalf("WriteReviews: %v", err)
	}
	second := NewRun(123, "classic")
	if err := s.WriteReviews(ctx, second, set); err != nil {
		t.Fatalf("WriteReviews (second run): %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("runs share id %s", first.ID)
	}

	var runs, reviews int
	if err := s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM review_runs`).Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if err := s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM product_reviews`).Scan(&reviews); err != nil {
		t.Fatal(err)
	}
	if runs != 2 || reviews != 6 {
		t.Fatalf("runs=%d reviews=%d, want 2 and 6", runs, reviews)
	}

	var seed int64
	var style string
	var total int
	if err := s.DB().QueryRowContext(ctx, `SELECT seed, style, reviews FROM review_runs WHERE run_id = ?`, first.ID.String()).Scan(&seed, &style, &total); err != nil {
		t.Fatal(err)
	}
	if seed != 789 || style != "ingredient" || total != 3 {
		t.Fatalf("run row = %d %q %d", seed, style, total)
	}

	back, err := s.LoadReviews(ctx, first.ID)
	if err != nil {
		t.Fatalf("LoadReviews: %v", err)
	}
	slugs := back.Slugs()
	if len(slugs) != 2 || slugs[0] != "zeta" || slugs[1] != "alpha" {
		t.Fatalf("slug order = %v", slugs)
	}
	zeta, _ := back.Get("zeta")
	if len(zeta) != 2 || zeta[1].Name != "Rahul S." || zeta[0].Comment != "AHA & BHA" {
		t.Fatalf("zeta reviews = %+v", zeta)
	}
}
