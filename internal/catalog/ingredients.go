package catalog

import (
	"strings"
	"unicode/utf8"
)

// blockedNames are product names that leak into the ingredient column when
// it is split on commas.
var blockedNames = map[string]struct{}{
	"Face Cleanser":          {},
	"Furbish Scrub":          {},
	"Revitalizing Face Mask": {},
	"Wine Lotion":            {},
	"Face Cleanser +":        {},
	"Anytime Cream":          {},
	"Hair Oil":               {},
	"Hair Lather Shampoo":    {},
	"Hair Mask":              {},
	"Hydrating Moisturizer":  {},
	"Face Serum":             {},
}

// ingredientAliases collapses known synonyms onto one canonical name.
var ingredientAliases = map[string]string{
	"Aprajita":            "Blue Tea",
	"Blue Tea":            "Blue Tea",
	"Aprajita (Blue Tea)": "Blue Tea",
	"AHA & BHA":           "AHA & BHA",
	"AHA":                 "AHA & BHA",
	"BHA":                 "AHA & BHA",
}

// ExtractIngredients splits a free-text "Key Ingredients" field into at most
// MaxIngredients names, deduplicated case-sensitively in first-seen order.
//
// A part such as "Aprajita (Blue Tea): soothes" yields both "Aprajita" and
// "Blue Tea". Only the first parenthetical is honoured; text after a second
// "(" is ignored.
func ExtractIngredients(field string) []string {
	return capIngredients(extractCandidates(field))
}

// extractCandidates is ExtractIngredients without the fallback and cap.
func extractCandidates(field string) []string {
	var found []string
	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)
		if runeLen(part) <= 3 {
			continue
		}
		name := strings.TrimSpace(head(head(part, ":"), "("))
		if name == "" {
			continue
		}
		if _, blocked := blockedNames[name]; blocked {
			continue
		}
		if !strings.Contains(part, "(") {
			found = append(found, name)
			continue
		}
		segments := strings.Split(part, "(")
		base := strings.TrimSpace(segments[0])
		alt := strings.TrimSpace(head(segments[1], ")"))
		if base != "" {
			found = append(found, base)
		}
		if alt != "" && alt != base {
			found = append(found, alt)
		}
	}

	out := make([]string, 0, len(found))
	seen := map[string]struct{}{}
	for _, ing := range found {
		ing = strings.TrimSpace(ing)
		if runeLen(ing) <= 2 {
			continue
		}
		if _, ok := seen[ing]; ok {
			continue
		}
		seen[ing] = struct{}{}
		out = append(out, ing)
	}
	return out
}

// NormalizeIngredients applies the alias table and deduplicates
// case-insensitively. Running it on its own output returns the same list.
func NormalizeIngredients(list []string) []string {
	out := make([]string, 0, len(list))
	seen := map[string]struct{}{}
	for _, ing := range list {
		name := strings.TrimSpace(ing)
		name = strings.TrimSpace(strings.TrimSuffix(name, "& Aprajita"))
		if alias, ok := ingredientAliases[name]; ok {
			name = alias
		}
		name = strings.TrimSpace(strings.ReplaceAll(name, "Aprajita", DefaultIngredient))
		if runeLen(name) < 2 || name == "&" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return capIngredients(out)
}

// PrimaryIngredient picks the ingredient a review should mention. Blue Tea
// wins whenever it is present under either name.
func PrimaryIngredient(list []string) string {
	for _, ing := range list {
		if strings.Contains(ing, DefaultIngredient) || strings.Contains(ing, "Aprajita") {
			return DefaultIngredient
		}
	}
	if len(list) == 0 {
		return DefaultIngredient
	}
	return list[0]
}

// IngredientPhrase joins the primary ingredient with a secondary one, e.g.
// "Blue Tea and Vitamin C".
func IngredientPhrase(list []string) string {
	primary := PrimaryIngredient(list)
	if len(list) < 2 {
		return primary
	}
	secondary := list[1]
	if secondary == primary {
		secondary = ""
		if len(list) > 2 {
			secondary = list[2]
		}
	}
	if secondary == "" {
		return primary
	}
	return primary + " and " + secondary
}

func capIngredients(list []string) []string {
	if len(list) == 0 {
		return []string{DefaultIngredient}
	}
	if len(list) > MaxIngredients {
		list = list[:MaxIngredients]
	}
	return list
}

// head returns s up to the first sep, or s when sep is absent.
func head(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
