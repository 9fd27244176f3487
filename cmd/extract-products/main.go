package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"catalogseed/internal/catalog"
	"catalogseed/internal/config"
	"catalogseed/internal/emit"
	"catalogseed/internal/logging"
	"catalogseed/internal/store"
)

var (
	inputPath   = flag.String("input", "product description page.csv", "Input product CSV")
	outputPath  = flag.String("out", "products_extracted.json", "Products JSON output path")
	profilePath = flag.String("profile", "", "Profile markdown output path (default <out>_profile.md, \"-\" to skip)")
	sqlitePath  = flag.String("sqlite", "", "Optional SQLite output path for the catalog_products table")
	dbDriver    = flag.String("db-driver", "", "Database driver for the catalog table: sqlite or postgres (default DB_DRIVER)")
	dbDSN       = flag.String("db-dsn", "", "Database DSN for the catalog table (default DB_DSN)")
	quiet       = flag.Bool("quiet", false, "Skip the per-product listing")
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

	outProfile := *profilePath
	if outProfile == "" {
		outProfile = strings.TrimSuffix(*outputPath, filepath.Ext(*outputPath)) + "_profile.md"
	}

	rows, err := catalog.LoadRows(*inputPath)
	if err != nil {
		fatalf("load csv: %v", err)
	}
	log.Debug("csv loaded", zap.String("path", *inputPath), zap.Int("rows", len(rows)))

	products, st := catalog.BuildProducts(rows)
	for _, p := range products {
		log.Debug("product added",
			zap.String("slug", p.Slug),
			zap.String("category", string(p.Category)),
			zap.String("type", string(p.Type)),
			zap.Strings("ingredients", p.Ingredients))
	}
	for _, slug := range st.FallbackSlugs {
		log.Warn("no ingredients extracted, using fallback", zap.String("slug", slug), zap.String("ingredient", catalog.DefaultIngredient))
	}

	if err := emit.WriteJSON(*outputPath, products); err != nil {
		fatalf("write products: %v", err)
	}
	if outProfile != "-" {
		if err := emit.WriteText(outProfile, catalog.BuildProfile(products, st)); err != nil {
			fatalf("write profile: %v", err)
		}
	}

	driver, dsn := orDefault(*dbDriver, cfg.DBDriver), orDefault(*dbDSN, cfg.DBDSN)
	if *sqlitePath != "" {
		driver, dsn = store.DriverSQLite, *sqlitePath
	}
	if dsn != "" {
		if err := writeTable(driver, dsn, products); err != nil {
			fatalf("write %s table: %v", driver, err)
		}
	}

	if !*quiet {
		fmt.Printf("Product list:\n")
		for i, p := range products {
			fmt.Printf("%2d. %s | %s/%s | Ingredients: %s\n", i+1, p.Slug, p.Category, p.Type, strings.Join(firstN(p.Ingredients, 3), ", "))
		}
		fmt.Println()
	}
	fmt.Printf("Rows read: %d\n", st.RowsRead)
	fmt.Printf("Products extracted: %d\n", len(products))
	fmt.Printf("Duplicate slugs dropped: %d\n", st.DuplicateSlugs)
	fmt.Printf("Fallback ingredient used: %d\n", st.FallbackUsed)
	fmt.Printf("JSON: %s\n", *outputPath)
	if outProfile != "-" {
		fmt.Printf("Profile: %s\n", outProfile)
	}
	if dsn != "" {
		fmt.Printf("Table: catalog_products (%s)\n", driver)
	}
}

func writeTable(driver, dsn string, products []catalog.Product) error {
	ctx := context.Background()
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
	if err := s.WriteProducts(ctx, products); err != nil {
		return err
	}
	counts, err := s.CountProducts(ctx)
	if err != nil {
		return err
	}
	for cat, n := range counts {
		log.Debug("catalog table written", zap.String("category", string(cat)), zap.Int("products", n))
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
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
