package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BuildProfile renders a markdown summary of an extraction run.
func BuildProfile(products []Product, st BuildStats) string {
	lines := []string{
		"# catalog extraction report",
		"",
		"## Dataset shape",
		fmt.Sprintf("- Source rows read: %s", fmtInt(st.RowsRead)),
		fmt.Sprintf("- Rows without slug skipped: %s", fmtInt(st.SkippedNoSlug)),
		fmt.Sprintf("- Duplicate slug rows dropped: %s", fmtInt(st.DuplicateSlugs)),
		fmt.Sprintf("- Products written: %s", fmtInt(len(products))),
		fmt.Sprintf("- Products using fallback ingredient (%s): %s", DefaultIngredient, fmtInt(st.FallbackUsed)),
		"",
	}
	if len(st.DuplicateSlugList) > 0 {
		lines = append(lines, "## Duplicate slugs")
		for _, s := range st.DuplicateSlugList {
			lines = append(lines, fmt.Sprintf("- `%s`", s))
		}
		lines = append(lines, "")
	}
	if len(st.FallbackSlugs) > 0 {
		lines = append(lines, "## Fallback ingredient applied")
		for _, s := range st.FallbackSlugs {
			lines = append(lines, fmt.Sprintf("- `%s`", s))
		}
		lines = append(lines, "")
	}

	byCategory := map[string]int{}
	byType := map[string]int{}
	byIngredient := map[string]int{}
	for _, p := range products {
		byCategory[string(p.Category)]++
		byType[string(p.Category)+"/"+string(p.Type)]++
		for _, ing := range p.Ingredients {
			byIngredient[ing]++
		}
	}
	lines = append(lines, "## Products per category")
	lines = append(lines, topCounts(byCategory, 0)...)
	lines = append(lines, "")
	lines = append(lines, "## Products per category/type")
	lines = append(lines, topCounts(byType, 0)...)
	lines = append(lines, "")
	lines = append(lines, "## Ingredients (top 20)")
	lines = append(lines, topCounts(byIngredient, 20)...)
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// topCounts sorts by count descending, then key ascending. limit <= 0 keeps all.
func topCounts(counts map[string]int, limit int) []string {
	type kv struct {
		k string
		v int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].v == items[j].v {
			return items[i].k < items[j].k
		}
		return items[i].v > items[j].v
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprintf("- %s: %s", it.k, fmtInt(it.v)))
	}
	return out
}

func fmtInt(v int) string {
	s := strconv.Itoa(v)
	n := len(s)
	if n <= 3 {
		return s
	}
	var parts []string
	for n > 3 {
		parts = append([]string{s[n-3:]}, parts...)
		s = s[:n-3]
		n = len(s)
	}
	if s != "" {
		parts = append([]string{s}, parts...)
	}
	return strings.Join(parts, ",")
}
