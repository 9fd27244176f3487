package review

import (
	"encoding/json"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogseed/internal/catalog"
)

func newGenerator(t *testing.T, seed int64, cfg Config) *Generator {
	t.Helper()
	g, err := New(rand.New(rand.NewSource(seed)), cfg)
	require.NoError(t, err)
	return g
}

var faceSerum = catalog.Product{
	Name:        "Face Serum",
	Slug:        "nefol-face-serum",
	Category:    catalog.CategoryFace,
	Type:        catalog.TypeSerum,
	Ingredients: []string{"Vitamin C", "Niacinamide"},
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	require.Error(t, err)

	cfg := DefaultConfig()
	cfg.MaxReviews = cfg.MinReviews - 1
	_, err = New(rand.New(rand.NewSource(1)), cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.SuffixChance = 1.5
	_, err = New(rand.New(rand.NewSource(1)), cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Style = "haiku"
	_, err = New(rand.New(rand.NewSource(1)), cfg)
	require.Error(t, err)
}

func TestGenerateCountWithinRange(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), ClassicConfig()} {
		g := newGenerator(t, 789, cfg)
		for _, p := range catalog.Builtin() {
			n := len(g.Generate(p))
			assert.GreaterOrEqual(t, n, cfg.MinReviews, p.Slug)
			assert.LessOrEqual(t, n, cfg.MaxReviews, p.Slug)
		}
	}
}

func TestRatingDistribution(t *testing.T) {
	g := newGenerator(t, 123, DefaultConfig())
	const n = 100000
	counts := map[int]int{}
	for _, r := range g.GenerateN(faceSerum, n) {
		require.GreaterOrEqual(t, r.Rating, 1)
		require.LessOrEqual(t, r.Rating, 5)
		counts[r.Rating]++
	}
	want := map[int]float64{5: 0.55, 4: 0.30, 3: 0.08, 2: 0.04, 1: 0.03}
	for stars, share := range want {
		got := float64(counts[stars]) / n
		assert.InDelta(t, share, got, 0.01, "share of %d-star reviews", stars)
	}
}

func TestSameSeedSameOutput(t *testing.T) {
	a := newGenerator(t, 456, DefaultConfig()).GenerateAll(catalog.Builtin())
	b := newGenerator(t, 456, DefaultConfig()).GenerateAll(catalog.Builtin())
	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))

	c := newGenerator(t, 457, DefaultConfig()).GenerateAll(catalog.Builtin())
	jc, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotEqual(t, string(ja), string(jc))
}

func TestGenerateAllFollowsProductOrder(t *testing.T) {
	products := catalog.Builtin()
	set := newGenerator(t, 1, DefaultConfig()).GenerateAll(products)
	require.Equal(t, len(products), set.Len())
	for i, slug := range set.Slugs() {
		assert.Equal(t, products[i].Slug, slug)
	}
}

func TestFaceSerumCommentsMentionPrimaryIngredient(t *testing.T) {
	pool := Comments(StyleIngredient, faceSerum)
	templates := faceSerumTemplates
	check := func(rendered, tmpl []string) {
		require.Len(t, rendered, len(tmpl))
		for i, tpl := range tmpl {
			if strings.Contains(tpl, placeholderPrimary) || strings.Contains(tpl, placeholderPhrase) {
				assert.Contains(t, rendered[i], "Vitamin C", "template %q", tpl)
			}
			assert.NotContains(t, rendered[i], "{ing")
		}
	}
	check(pool.Short, templates.Short)
	check(pool.Long, templates.Long)

	cfg := DefaultConfig()
	cfg.SuffixChance = 0
	all := append(append([]string(nil), pool.Short...), pool.Long...)
	for _, r := range newGenerator(t, 5, cfg).GenerateN(faceSerum, 500) {
		assert.Contains(t, all, r.Comment)
	}
}

func TestIngredientPhraseInLongComments(t *testing.T) {
	pool := Comments(StyleIngredient, faceSerum)
	assert.Contains(t, pool.Long[0], "Vitamin C and Niacinamide")
}

func TestEveryKindHasComments(t *testing.T) {
	cats := []catalog.Category{catalog.CategoryFace, catalog.CategoryHair, catalog.CategoryBody, catalog.CategoryCombo, "unknown"}
	types := []catalog.Type{
		catalog.TypeSerum, catalog.TypeScrub, catalog.TypeMask, catalog.TypeCleanser, catalog.TypeCream,
		catalog.TypeMoisturizer, catalog.TypeOil, catalog.TypeShampoo, catalog.TypeLotion, catalog.TypeAcne,
		catalog.TypeCombo, catalog.TypeFace, catalog.TypeHair, "unknown",
	}
	for _, style := range []Style{StyleIngredient, StyleClassic} {
		for _, c := range cats {
			for _, ty := range types {
				p := catalog.Product{Slug: "x", Category: c, Type: ty, Ingredients: []string{"Rose"}}
				pool := Comments(style, p)
				assert.NotEmpty(t, pool.Short, "%s %s/%s short", style, c, ty)
				assert.NotEmpty(t, pool.Long, "%s %s/%s long", style, c, ty)
			}
		}
	}
}

func TestKindOfDefaults(t *testing.T) {
	assert.Equal(t, KindFaceOther, KindOf(catalog.CategoryFace, catalog.TypeShampoo))
	assert.Equal(t, KindHairOther, KindOf(catalog.CategoryHair, catalog.TypeSerum))
	assert.Equal(t, KindBodyOther, KindOf(catalog.CategoryBody, catalog.TypeCombo))
	assert.Equal(t, KindComboOther, KindOf(catalog.CategoryCombo, catalog.TypeCombo))
	assert.Equal(t, KindGeneric, KindOf("pets", catalog.TypeSerum))
	assert.Equal(t, "face/serum", KindOf(catalog.CategoryFace, catalog.TypeSerum).String())
}

func TestClassicPoolExtendsCategoryBase(t *testing.T) {
	pool := classicPool(KindFaceSerum)
	assert.Len(t, pool.Short, len(classicFace.Short)+len(classicSerum))
	assert.Equal(t, classicFace.Long, pool.Long)

	combo := classicPool(KindComboHair)
	assert.Len(t, combo.Short, len(classicCombo.Short)+4)

	moist := classicPool(KindFaceMoisturizer)
	assert.Len(t, moist.Short, len(classicFace.Short))
}

func TestSuffixAndShareKnobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SuffixChance = 1
	cfg.FemaleShare = 1
	cfg.LongShare = 1
	pool := Comments(cfg.Style, faceSerum)
	for _, r := range newGenerator(t, 9, cfg).GenerateN(faceSerum, 300) {
		assert.Contains(t, femaleNames, r.Name)
		matched := false
		for _, long := range pool.Long {
			for _, sfx := range ingredientSuffixes {
				if r.Comment == long+" "+sfx {
					matched = true
				}
			}
		}
		assert.True(t, matched, "comment %q is not long+suffix", r.Comment)
	}

	cfg.SuffixChance = 0
	cfg.FemaleShare = 0
	cfg.LongShare = 0
	for _, r := range newGenerator(t, 9, cfg).GenerateN(faceSerum, 300) {
		assert.Contains(t, maleNames, r.Name)
		assert.Contains(t, pool.Short, r.Comment)
	}
}

func TestParseStyle(t *testing.T) {
	s, ok := ParseStyle(" Classic ")
	assert.True(t, ok)
	assert.Equal(t, StyleClassic, s)
	_, ok = ParseStyle("poetry")
	assert.False(t, ok)
}

func TestMeanRatingIsPlausible(t *testing.T) {
	set := newGenerator(t, 789, DefaultConfig()).GenerateAll(catalog.Builtin())
	for _, slug := range set.Slugs() {
		reviews, _ := set.Get(slug)
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		mean := float64(sum) / float64(len(reviews))
		// expected mean is 4.3; 60+ samples keep it well inside this band
		assert.False(t, math.IsNaN(mean))
		assert.InDelta(t, 4.3, mean, 0.6, slug)
	}
}

func TestClassicConfigSharesNameSplit(t *testing.T) {
	assert.Equal(t, DefaultConfig().FemaleShare, ClassicConfig().FemaleShare)

	cfg := ClassicConfig()
	cfg.FemaleShare = 1
	for _, r := range newGenerator(t, 3, cfg).GenerateN(faceSerum, 200) {
		assert.Contains(t, femaleNames, r.Name)
	}
}
