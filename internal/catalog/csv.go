package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Catalog CSV column headers.
const (
	ColumnSlug        = "Slug"
	ColumnName        = "Product Name"
	ColumnIngredients = "Key Ingredients"
	ColumnProductType = "Product Type"
	ColumnCategory    = "Product Category"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadRows reads a catalog CSV from disk.
func LoadRows(path string) ([]Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadRows(bytes.NewReader(b))
}

// ReadRows parses catalog rows by header name. Missing columns and short
// records read as empty strings.
func ReadRows(r io.Reader) ([]Row, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimPrefix(b, utf8BOM)
	cr := csv.NewReader(bytes.NewReader(b))
	cr.FieldsPerRecord = -1
	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	field := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read record %d: %w", len(rows)+2, err)
		}
		rows = append(rows, Row{
			Slug:        field(rec, ColumnSlug),
			Name:        field(rec, ColumnName),
			Ingredients: field(rec, ColumnIngredients),
			ProductType: field(rec, ColumnProductType),
			Category:    field(rec, ColumnCategory),
		})
	}
	return rows, nil
}

// BuildStats counts what BuildProducts dropped or defaulted.
type BuildStats struct {
	RowsRead          int
	SkippedNoSlug     int
	DuplicateSlugs    int
	FallbackUsed      int
	FallbackSlugs     []string
	DuplicateSlugList []string
}

// BuildProducts classifies rows and extracts their ingredients. Rows without
// a slug are skipped; for a repeated slug the first row wins.
func BuildProducts(rows []Row) ([]Product, BuildStats) {
	st := BuildStats{RowsRead: len(rows)}
	out := make([]Product, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if r.Slug == "" {
			st.SkippedNoSlug++
			continue
		}
		if _, dup := seen[r.Slug]; dup {
			st.DuplicateSlugs++
			st.DuplicateSlugList = append(st.DuplicateSlugList, r.Slug)
			continue
		}
		seen[r.Slug] = struct{}{}

		candidates := extractCandidates(r.Ingredients)
		if len(candidates) == 0 {
			st.FallbackUsed++
			st.FallbackSlugs = append(st.FallbackSlugs, r.Slug)
		}
		cat, typ := Classify(r)
		out = append(out, Product{
			Name:        r.Name,
			Slug:        r.Slug,
			Category:    cat,
			Type:        typ,
			Ingredients: capIngredients(candidates),
		})
	}
	return out, st
}
