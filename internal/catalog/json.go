package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadProducts reads a products JSON file as written by extract-products.
func LoadProducts(path string) ([]Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return products, nil
}

// NormalizeProducts returns copies of products with their ingredient lists
// passed through NormalizeIngredients.
func NormalizeProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		p.Ingredients = NormalizeIngredients(p.Ingredients)
		out[i] = p
	}
	return out
}
