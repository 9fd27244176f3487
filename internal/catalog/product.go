package catalog

// Category is the coarse product grouping.
type Category string

const (
	CategoryFace  Category = "face"
	CategoryHair  Category = "hair"
	CategoryBody  Category = "body"
	CategoryCombo Category = "combo"
)

// Type is the product kind within a category. TypeFace and TypeHair only
// describe combo packs in the built-in catalog; the classifier never emits them.
type Type string

const (
	TypeSerum       Type = "serum"
	TypeScrub       Type = "scrub"
	TypeMask        Type = "mask"
	TypeCleanser    Type = "cleanser"
	TypeCream       Type = "cream"
	TypeMoisturizer Type = "moisturizer"
	TypeOil         Type = "oil"
	TypeShampoo     Type = "shampoo"
	TypeLotion      Type = "lotion"
	TypeAcne        Type = "acne"
	TypeCombo       Type = "combo"
	TypeFace        Type = "face"
	TypeHair        Type = "hair"
)

// DefaultIngredient stands in when nothing could be extracted.
const DefaultIngredient = "Blue Tea"

// MaxIngredients caps every ingredient list.
const MaxIngredients = 5

// Product is one normalized catalog entry. Slug is the lookup key into review data.
type Product struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Category    Category `json:"category"`
	Type        Type     `json:"type"`
	Ingredients []string `json:"ingredients"`
}

// Row is one raw catalog CSV record.
type Row struct {
	Slug        string
	Name        string
	Ingredients string
	ProductType string
	Category    string
}

// Builtin returns the hardcoded catalog with curated ingredient lists.
func Builtin() []Product {
	return []Product{
		{Name: "Nefol Deep Clean Combo", Slug: "nefol-deep-clean-combo", Category: CategoryCombo, Type: TypeFace, Ingredients: []string{"Blue Tea", "Charcoal", "Activated Charcoal"}},
		{Name: "Anytime cream", Slug: "nefol-anytime-cream", Category: CategoryFace, Type: TypeCream, Ingredients: []string{"Blue Tea", "Shea Butter", "Vitamin E"}},
		{Name: "Face Serum", Slug: "nefol-face-serum", Category: CategoryFace, Type: TypeSerum, Ingredients: []string{"Blue Tea", "Hyaluronic Acid", "Vitamin C"}},
		{Name: "Furbish Scrub", Slug: "nefol-furbish-scrub", Category: CategoryFace, Type: TypeScrub, Ingredients: []string{"Blue Tea", "Papaya", "AHA & BHA"}},
		{Name: "Hair Lather Shampoo", Slug: "nefol-hair-lather-shampoo", Category: CategoryHair, Type: TypeShampoo, Ingredients: []string{"Blue Tea", "Amla", "Biotin"}},
		{Name: "Hair Mask", Slug: "nefol-hair-mask", Category: CategoryHair, Type: TypeMask, Ingredients: []string{"Blue Tea", "Argan Oil", "Coconut Oil"}},
		{Name: "Hair Oil", Slug: "nefol-hair-oil", Category: CategoryHair, Type: TypeOil, Ingredients: []string{"Blue Tea", "Brahmi", "Amla"}},
		{Name: "Hydrating moisturizer", Slug: "nefol-hydrating-moisturizer", Category: CategoryFace, Type: TypeMoisturizer, Ingredients: []string{"Blue Tea", "Hyaluronic Acid", "Shea Butter"}},
		{Name: "Nefol Acne Control Duo", Slug: "nefol-acne-control-duo", Category: CategoryCombo, Type: TypeAcne, Ingredients: []string{"Blue Tea", "AHA & BHA", "Charcoal"}},
		{Name: "Nefol Facewash/Cleanser", Slug: "nefol-face-cleanser", Category: CategoryFace, Type: TypeCleanser, Ingredients: []string{"Blue Tea", "Charcoal", "Green Tea"}},
		{Name: "Nefol Glow Care combo", Slug: "nefol-glow-care-combo", Category: CategoryCombo, Type: TypeFace, Ingredients: []string{"Blue Tea", "Vitamin C", "Papaya"}},
		{Name: "Nefol Hair Care", Slug: "nefol-hair-care-combo", Category: CategoryCombo, Type: TypeHair, Ingredients: []string{"Blue Tea", "Amla", "Argan Oil"}},
		{Name: "Nefol Hydration Duo", Slug: "nefol-hydration-duo", Category: CategoryCombo, Type: TypeFace, Ingredients: []string{"Blue Tea", "Hyaluronic Acid", "Shea Butter"}},
		{Name: "Nefol Radiance Routine", Slug: "nefol-radiance-routine", Category: CategoryCombo, Type: TypeFace, Ingredients: []string{"Blue Tea", "Vitamin C", "Mulberry"}},
		{Name: "Revitalizing Face Mask", Slug: "nefol-revitalizing-face-mask", Category: CategoryFace, Type: TypeMask, Ingredients: []string{"Blue Tea", "Charcoal", "Kaolin Clay"}},
		{Name: "Wine Lotion", Slug: "nefol-wine-lotion", Category: CategoryBody, Type: TypeLotion, Ingredients: []string{"Wine Extract", "Grapeseed Oil", "Shea Butter"}},
	}
}
