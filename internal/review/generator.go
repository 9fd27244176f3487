package review

import (
	"errors"
	"fmt"
	"math/rand"

	"catalogseed/internal/catalog"
)

// Review is one synthesized customer review.
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}

// ratingWeights is the star distribution, highest rating first.
var ratingWeights = []struct {
	stars  int
	weight float64
}{
	{5, 55}, {4, 30}, {3, 8}, {2, 4}, {1, 3},
}

// Config tunes one generation run.
type Config struct {
	MinReviews   int
	MaxReviews   int
	FemaleShare  float64
	LongShare    float64
	SuffixChance float64
	Style        Style
}

// DefaultConfig produces 60-80 ingredient-aware reviews per product.
func DefaultConfig() Config {
	return Config{
		MinReviews:   60,
		MaxReviews:   80,
		FemaleShare:  0.7,
		LongShare:    0.6,
		SuffixChance: 0.3,
		Style:        StyleIngredient,
	}
}

// ClassicConfig produces 40-100 reviews per product from the static
// multilingual tables. Names use the same female/male split as DefaultConfig.
func ClassicConfig() Config {
	return Config{
		MinReviews:   40,
		MaxReviews:   100,
		FemaleShare:  0.7,
		LongShare:    0.5,
		SuffixChance: 0.25,
		Style:        StyleClassic,
	}
}

func (c Config) validate() error {
	if c.MinReviews < 0 || c.MaxReviews < c.MinReviews {
		return fmt.Errorf("review count range [%d, %d] is invalid", c.MinReviews, c.MaxReviews)
	}
	for name, p := range map[string]float64{"female share": c.FemaleShare, "long share": c.LongShare, "suffix chance": c.SuffixChance} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s %v is outside [0, 1]", name, p)
		}
	}
	if c.Style != StyleIngredient && c.Style != StyleClassic {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	return nil
}

// Generator synthesizes reviews from a caller-owned random source. Two
// generators built from sources with the same seed and config produce the
// same reviews for the same products.
type Generator struct {
	rng *rand.Rand
	cfg Config
}

// New returns a Generator drawing from rng.
func New(rng *rand.Rand, cfg Config) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("review: nil random source")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("review: %w", err)
	}
	return &Generator{rng: rng, cfg: cfg}, nil
}

// Generate draws a review count from the configured range and synthesizes
// that many reviews for p.
func (g *Generator) Generate(p catalog.Product) []Review {
	n := g.cfg.MinReviews + g.rng.Intn(g.cfg.MaxReviews-g.cfg.MinReviews+1)
	return g.GenerateN(p, n)
}

// GenerateN synthesizes exactly n reviews for p.
func (g *Generator) GenerateN(p catalog.Product, n int) []Review {
	pool := Comments(g.cfg.Style, p)
	suffixes := Suffixes(g.cfg.Style)
	out := make([]Review, 0, n)
	for i := 0; i < n; i++ {
		r := Review{
			Name:   g.pickName(),
			Rating: g.pickRating(),
			Date:   RelativeDate(randomAge(g.rng)),
		}
		r.Comment = g.pickComment(pool)
		if g.rng.Float64() < g.cfg.SuffixChance {
			r.Comment += " " + g.pick(suffixes)
		}
		out = append(out, r)
	}
	return out
}

// GenerateAll runs Generate for every product in order.
func (g *Generator) GenerateAll(products []catalog.Product) *Set {
	set := NewSet()
	for _, p := range products {
		set.Put(p.Slug, g.Generate(p))
	}
	return set
}

func (g *Generator) pickName() string {
	if g.rng.Float64() < g.cfg.FemaleShare {
		return g.pick(femaleNames)
	}
	return g.pick(maleNames)
}

func (g *Generator) pickRating() int {
	total := 0.0
	for _, w := range ratingWeights {
		total += w.weight
	}
	x := g.rng.Float64() * total
	for _, w := range ratingWeights {
		if x < w.weight {
			return w.stars
		}
		x -= w.weight
	}
	return ratingWeights[len(ratingWeights)-1].stars
}

func (g *Generator) pickComment(pool Pool) string {
	candidates := pool.Short
	if g.rng.Float64() > 1-g.cfg.LongShare {
		candidates = pool.Long
	}
	if len(candidates) == 0 {
		candidates = append(append([]string(nil), pool.Short...), pool.Long...)
	}
	return g.pick(candidates)
}

func (g *Generator) pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[g.rng.Intn(len(items))]
}
