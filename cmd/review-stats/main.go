package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"catalogseed/internal/config"
	"catalogseed/internal/emit"
	"catalogseed/internal/logging"
	"catalogseed/internal/review"
	"catalogseed/internal/stats"
)

var (
	reviewsPath = flag.String("reviews", "product_reviews.json", "Reviews JSON from generate-reviews")
	slugFlag    = flag.String("slug", "", "Only report this product (default: all)")
	showReviews = flag.Bool("show", false, "Print the product's reviews as JSON (requires -slug)")
	noCache     = flag.Bool("no-cache", false, "Ignore REDIS_ADDR and use static data only")
	asJSON      = flag.Bool("json", false, "Print stats per slug as JSON")
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

	ctx := context.Background()
	var cache *stats.Redis
	source := "static"
	if cfg.RedisAddr != "" && !*noCache {
		client, err := stats.NewRedisClient(ctx, stats.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, log)
		if err != nil {
			log.Warn("stats cache unavailable, using static data", zap.Error(err))
		} else {
			defer client.Close()
			cache = stats.NewRedis(client.GetClient())
			source = "redis+static"
		}
	}

	set, err := review.LoadSet(*reviewsPath)
	switch {
	case errors.Is(err, os.ErrNotExist) && cache != nil:
		log.Warn("reviews file missing, listing cached products only", zap.String("path", *reviewsPath))
		set = review.NewSet()
		source = "redis"
	case err != nil:
		fatalf("load reviews: %v", err)
	}

	var lookup *stats.Lookup
	if cache != nil {
		lookup = stats.NewLookup(set, cache, log)
	} else {
		lookup = stats.NewLookup(set, nil, log)
	}

	slugs := set.Slugs()
	if set.Len() == 0 && cache != nil {
		cached, err := cache.Slugs(ctx)
		if err != nil {
			fatalf("list cached slugs: %v", err)
		}
		sort.Strings(cached)
		slugs = cached
	}
	if *slugFlag != "" {
		if _, ok := set.Get(*slugFlag); !ok {
			log.Warn("slug not in static reviews", zap.String("slug", *slugFlag))
		}
		slugs = []string{*slugFlag}
	}

	if *showReviews {
		if *slugFlag == "" {
			fatalf("-show requires -slug")
		}
		b, err := emit.Marshal(lookup.Reviews(*slugFlag))
		if err != nil {
			fatalf("encode reviews: %v", err)
		}
		os.Stdout.Write(b)
		return
	}

	if *asJSON {
		out := make(map[string]stats.Stats, len(slugs))
		for _, slug := range slugs {
			out[slug] = lookup.Stats(ctx, slug)
		}
		b, err := emit.Marshal(out)
		if err != nil {
			fatalf("encode stats: %v", err)
		}
		os.Stdout.Write(b)
		return
	}

	fmt.Printf("%-40s %7s %7s %9s\n", "slug", "rating", "reviews", "verified")
	for _, slug := range slugs {
		fmt.Printf("%-40s %7.2f %7d %9t\n",
			slug,
			lookup.Rating(ctx, slug),
			lookup.ReviewCount(ctx, slug),
			lookup.HasVerifiedReviews(ctx, slug))
	}
	fmt.Printf("\nProducts: %d\n", len(slugs))
	fmt.Printf("Source: %s\n", source)
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
