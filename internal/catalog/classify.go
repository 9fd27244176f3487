package catalog

import "strings"

// Classify derives the category and type of a row. Rules are checked in a
// fixed order and the first match wins.
func Classify(r Row) (Category, Type) {
	return classifyCategory(r), classifyType(r)
}

func classifyCategory(r Row) Category {
	cat := strings.ToLower(r.Category)
	switch {
	case strings.Contains(r.Slug, "combo"), strings.Contains(r.Name, "Combo"), r.Category == "combo packs":
		return CategoryCombo
	case strings.Contains(r.ProductType, "Hair"), strings.Contains(cat, "hair"):
		return CategoryHair
	case strings.Contains(r.ProductType, "Body"), strings.Contains(cat, "body"):
		return CategoryBody
	default:
		return CategoryFace
	}
}

type typeRule struct {
	typ      Type
	slugAny  []string
	nameAny  []string
	slugAlso string
}

// typeRules is ordered by precedence.
var typeRules = []typeRule{
	{typ: TypeSerum, slugAny: []string{"serum"}, nameAny: []string{"Serum"}},
	{typ: TypeScrub, slugAny: []string{"scrub"}, nameAny: []string{"Scrub"}},
	{typ: TypeMask, slugAny: []string{"mask"}, nameAny: []string{"Mask"}},
	{typ: TypeCleanser, slugAny: []string{"cleanser"}, nameAny: []string{"Facewash", "Face Cleanser"}},
	{typ: TypeCream, slugAny: []string{"cream"}, nameAny: []string{"Cream", "Anytime"}},
	{typ: TypeMoisturizer, slugAny: []string{"moisturizer"}, nameAny: []string{"Moisturizer"}},
	{typ: TypeOil, slugAny: []string{"oil"}, slugAlso: "hair"},
	{typ: TypeShampoo, slugAny: []string{"shampoo"}, nameAny: []string{"Shampoo"}},
	{typ: TypeLotion, slugAny: []string{"lotion"}, nameAny: []string{"Lotion"}},
	{typ: TypeAcne, slugAny: []string{"acne"}},
}

func (tr typeRule) matches(slug, name string) bool {
	for _, s := range tr.slugAny {
		if strings.Contains(slug, s) && (tr.slugAlso == "" || strings.Contains(slug, tr.slugAlso)) {
			return true
		}
	}
	for _, n := range tr.nameAny {
		if strings.Contains(name, n) {
			return true
		}
	}
	return false
}

func classifyType(r Row) Type {
	slug := strings.ToLower(r.Slug)
	for _, rule := range typeRules {
		if rule.matches(slug, r.Name) {
			return rule.typ
		}
	}
	return TypeCombo
}
