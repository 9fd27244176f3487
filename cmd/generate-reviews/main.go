package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"catalogseed/internal/catalog"
	"catalogseed/internal/config"
	"catalogseed/internal/emit"
	"catalogseed/internal/logging"
	"catalogseed/internal/review"
	"catalogseed/internal/stats"
	"catalogseed/internal/store"
)

var (
	productsPath = flag.String("products", "", "Products JSON from extract-products (default: built-in catalog)")
	styleName    = flag.String("style", string(review.StyleIngredient), "Comment style: ingredient or classic")
	seed         = flag.Int64("seed", 0, "Random seed (default REVIEW_SEED, then 789)")
	minReviews   = flag.Int("min", 0, "Minimum reviews per product (0 = style default)")
	maxReviews   = flag.Int("max", 0, "Maximum reviews per product (0 = style default)")
	jsonPath     = flag.String("json", "product_reviews.json", "Reviews JSON output path (\"-\" to skip)")
	tsPath       = flag.String("ts", "product_reviews.ts", "TypeScript module output path (\"-\" to skip)")
	jsPath       = flag.String("js", "", "Optional plain JavaScript module output path")
	sqlitePath   = flag.String("sqlite", "", "Optional SQLite path recording this run")
	dbDriver     = flag.String("db-driver", "", "Database driver for recording the run (default DB_DRIVER)")
	dbDSN        = flag.String("db-dsn", "", "Database DSN for recording the run (default DB_DSN)")
	publish      = flag.Bool("publish-redis", false, "Publish per-product stats to REDIS_ADDR")
	statsTTL     = flag.Duration("stats-ttl", 0, "TTL for published stats (0 = no expiry)")
)

var log *zap.Logger

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	log, err = logging.New(cfg.LogLevel)
	if err != nil {
		fatalf("logger: %v", err)
	}
	defer log.Sync()

	style, ok := review.ParseStyle(*styleName)
	if !ok {
		fatalf("unknown style %q", *styleName)
	}
	genCfg := review.DefaultConfig()
	if style == review.StyleClassic {
		genCfg = review.ClassicConfig()
	}
	if *minReviews > 0 {
		genCfg.MinReviews = *minReviews
	}
	if *maxReviews > 0 {
		genCfg.MaxReviews = *maxReviews
	}

	runSeed := cfg.ReviewSeed
	if flagSet("seed") {
		runSeed = *seed
	}

	products, source, err := loadProducts(*productsPath)
	if err != nil {
		fatalf("load products: %v", err)
	}
	log.Info("products loaded", zap.String("source", source), zap.Int("products", len(products)))

	gen, err := review.New(rand.New(rand.NewSource(runSeed)), genCfg)
	if err != nil {
		fatalf("generator: %v", err)
	}
	set := gen.GenerateAll(products)
	for _, p := range products {
		reviews, _ := set.Get(p.Slug)
		log.Debug("reviews generated",
			zap.String("slug", p.Slug),
			zap.String("kind", review.KindOf(p.Category, p.Type).String()),
			zap.Int("reviews", len(reviews)))
	}

	if *jsonPath != "-" {
		if err := emit.WriteJSON(*jsonPath, set); err != nil {
			fatalf("write json: %v", err)
		}
	}
	header := []string{
		fmt.Sprintf("Generated reviews for %d products (%s style, seed %d)", set.Len(), style, runSeed),
		fmt.Sprintf("Source: %s", source),
	}
	if *tsPath != "-" {
		prev, err := emit.ReadFingerprint(*tsPath)
		if err != nil {
			fatalf("read %s: %v", *tsPath, err)
		}
		sum, err := emit.WriteReviewsModule(*tsPath, set, emit.ModuleOptions{Header: header, TypeScript: true})
		if err != nil {
			fatalf("write ts: %v", err)
		}
		if prev == sum {
			log.Info("typescript payload unchanged", zap.String("path", *tsPath), zap.String("fingerprint", sum))
		}
	}
	if *jsPath != "" {
		if _, err := emit.WriteReviewsModule(*jsPath, set, emit.ModuleOptions{Header: header}); err != nil {
			fatalf("write js: %v", err)
		}
	}

	ctx := context.Background()
	driver, dsn := orDefault(*dbDriver, cfg.DBDriver), orDefault(*dbDSN, cfg.DBDSN)
	if *sqlitePath != "" {
		driver, dsn = store.DriverSQLite, *sqlitePath
	}
	var run store.Run
	if dsn != "" {
		run = store.NewRun(runSeed, string(style))
		if err := recordRun(ctx, driver, dsn, run, set); err != nil {
			fatalf("record run: %v", err)
		}
		log.Info("run recorded", zap.String("run_id", run.ID.String()), zap.String("driver", driver))
	}

	if *publish {
		if err := publishStats(ctx, cfg, set, *statsTTL); err != nil {
			fatalf("publish stats: %v", err)
		}
	}

	fmt.Printf("Generated reviews for %d products\n", set.Len())
	if *jsonPath != "-" {
		fmt.Printf("JSON: %s\n", *jsonPath)
	}
	if *tsPath != "-" {
		fmt.Printf("TypeScript: %s\n", *tsPath)
	}
	if *jsPath != "" {
		fmt.Printf("JavaScript: %s\n", *jsPath)
	}
	if dsn != "" {
		fmt.Printf("Run: %s (%s)\n", run.ID, driver)
	}
	fmt.Printf("Total reviews: %d\n", set.Total())
	fmt.Printf("\nReview summary per product:\n")
	static := stats.NewStatic(set)
	for _, p := range products {
		st, _ := static.ReviewStats(ctx, p.Slug)
		fmt.Printf("  %s: %d reviews (avg rating: %.2f)\n", p.Name, st.ReviewCount, st.AverageRating)
	}
}

func loadProducts(path string) ([]catalog.Product, string, error) {
	if path == "" {
		return catalog.Builtin(), "built-in catalog", nil
	}
	products, err := catalog.LoadProducts(path)
	if err != nil {
		return nil, "", err
	}
	return catalog.NormalizeProducts(products), path, nil
}

func recordRun(ctx context.Context, driver, dsn string, run store.Run, set *review.Set) error {
	if driver == store.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return err
		}
	}
	s, err := store.Open(ctx, driver, dsn)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.WriteReviews(ctx, run, set)
}

func publishStats(ctx context.Context, cfg config.Config, set *review.Set, ttl time.Duration) error {
	client, err := stats.NewRedisClient(ctx, stats.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, log)
	if err != nil {
		return err
	}
	defer client.Close()

	all := stats.NewStatic(set).All()
	if err := stats.NewRedis(client.GetClient()).Publish(ctx, all, ttl); err != nil {
		return err
	}
	log.Info("review stats published", zap.Int("products", len(all)), zap.Duration("ttl", ttl))
	return nil
}

func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func fatalf(msg string, args ...any) {
	if log != nil {
		log.Error(fmt.Sprintf(msg, args...))
		log.Sync()
	} else {
		fmt.Fprintf(os.Stderr, msg+"\n", args...)
	}
	os.Exit(1)
}
