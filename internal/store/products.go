package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"catalogseed/internal/catalog"
)

var productColumns = []string{"slug", "name", "category", "type", "ingredients", "primary_ingredient"}

// WriteProducts replaces the catalog_products table with products.
func (s *Store) WriteProducts(ctx context.Context, products []catalog.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS catalog_products`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE TABLE catalog_products (
		slug TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		type TEXT NOT NULL,
		ingredients TEXT NOT NULL,
		primary_ingredient TEXT NOT NULL
	)`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, s.bind(`INSERT INTO catalog_products (`+strings.Join(productColumns, ",")+`) VALUES (`+placeholders(len(productColumns))+`)`))
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range products {
		ingredients, err := json.Marshal(p.Ingredients)
		if err != nil {
			return fmt.Errorf("encode ingredients for %s: %w", p.Slug, err)
		}
		if _, err := stmt.ExecContext(ctx, p.Slug, p.Name, string(p.Category), string(p.Type), string(ingredients), catalog.PrimaryIngredient(p.Ingredients)); err != nil {
			return fmt.Errorf("insert %s: %w", p.Slug, err)
		}
	}

	for _, idx := range []string{
		`CREATE INDEX IF NOT EXISTS idx_catalog_products_category ON catalog_products(category)`,
		`CREATE INDEX IF NOT EXISTS idx_catalog_products_type ON catalog_products(type)`,
		`CREATE INDEX IF NOT EXISTS idx_catalog_products_primary ON catalog_products(primary_ingredient)`,
	} {
		if _, err := tx.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CountProducts returns the number of rows per category.
func (s *Store) CountProducts(ctx context.Context) (map[catalog.Category]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM catalog_products GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[catalog.Category]int{}
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		out[catalog.Category(cat)] = n
	}
	return out, rows.Err()
}
