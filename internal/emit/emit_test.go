package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catalogseed/internal/catalog"
	"catalogseed/internal/review"
)

func sampleSet() *review.Set {
	s := review.NewSet()
	s.Put("nefol-furbish-scrub", []review.Review{
		{Name: "Priya K.", Rating: 5, Date: "2 days ago", Comment: "AHA & BHA works <really> well"},
	})
	s.Put("nefol-acne-combo", []review.Review{
		{Name: "Rahul S.", Rating: 4, Date: "1 week ago", Comment: "Good combo"},
		{Name: "Ananya M.", Rating: 3, Date: "1 month ago", Comment: "ठीक है"},
	})
	return s
}

func TestWriteJSONProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "products.json")
	products := []catalog.Product{{
		Name: "Furbish Scrub", Slug: "nefol-furbish-scrub",
		Category: catalog.CategoryFace, Type: catalog.TypeScrub,
		Ingredients: []string{"AHA & BHA", "Blue Tea"},
	}}
	if err := WriteJSON(path, products); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(b)
	if !strings.HasSuffix(got, "}\n]\n") {
		t.Fatalf("expected trailing newline after array, got %q", got[len(got)-8:])
	}
	if !strings.Contains(got, `"AHA & BHA"`) {
		t.Fatalf("ampersand escaped: %s", got)
	}
	if !strings.Contains(got, "\n  {\n    \"name\": \"Furbish Scrub\",") {
		t.Fatalf("unexpected indentation:\n%s", got)
	}
	back, err := catalog.LoadProducts(path)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	if len(back) != 1 || back[0].Ingredients[0] != "AHA & BHA" {
		t.Fatalf("unexpected products: %+v", back)
	}
}

func TestWriteJSONKeepsSetOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.json")
	if err := WriteJSON(path, sampleSet()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	b, _ := os.ReadFile(path)
	got := string(b)
	first := strings.Index(got, "nefol-furbish-scrub")
	second := strings.Index(got, "nefol-acne-combo")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("slug order not preserved:\n%s", got)
	}
	if !strings.Contains(got, "ठीक है") {
		t.Fatalf("non-ASCII text was escaped:\n%s", got)
	}
	back, err := review.LoadSet(path)
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if back.Total() != 3 {
		t.Fatalf("expected 3 reviews, got %d", back.Total())
	}
}

func TestWriteReviewsModuleTypeScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "utils", "product_reviews.ts")
	sum, err := WriteReviewsModule(path, sampleSet(), ModuleOptions{
		Header:     []string{"Generated reviews for 2 products"},
		TypeScript: true,
	})
	if err != nil {
		t.Fatalf("WriteReviewsModule: %v", err)
	}
	if len(sum) != 16 {
		t.Fatalf("fingerprint %q is not 16 hex digits", sum)
	}
	b, _ := os.ReadFile(path)
	got := string(b)
	for _, want := range []string{
		"// Product Reviews Data\n// Generated reviews for 2 products\n",
		fingerprintPrefix + sum + "\n",
		"export const productReviews = {\n  \"nefol-furbish-scrub\": [",
		"AHA & BHA works <really> well",
		"export function getProductReviews(slug: string)",
		"export function getProductRating(slug: string): number",
		"export function getProductReviewCount(slug: string): number",
		"export function hasVerifiedReviews(slug: string): boolean",
		"toFixed(2)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("module missing %q:\n%s", want, got)
		}
	}

	start := strings.Index(got, "= ") + 2
	end := strings.Index(got, ";\n\n")
	var decoded map[string][]review.Review
	if err := json.Unmarshal([]byte(got[start:end]), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if len(decoded["nefol-acne-combo"]) != 2 {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
	if Fingerprint([]byte(got[start:end])) != sum {
		t.Fatalf("fingerprint does not match payload")
	}

	read, err := ReadFingerprint(path)
	if err != nil {
		t.Fatalf("ReadFingerprint: %v", err)
	}
	if read != sum {
		t.Fatalf("ReadFingerprint = %q, want %q", read, sum)
	}
}

func TestWriteReviewsModuleJavaScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "product_reviews.js")
	if _, err := WriteReviewsModule(path, sampleSet(), ModuleOptions{}); err != nil {
		t.Fatalf("WriteReviewsModule: %v", err)
	}
	b, _ := os.ReadFile(path)
	got := string(b)
	if !strings.Contains(got, "export function getProductReviews(slug) {") {
		t.Fatalf("missing plain accessor:\n%s", got)
	}
	if strings.Contains(got, "getProductRating") {
		t.Fatalf("plain module should not carry cache accessors")
	}
}

func TestFingerprintStableAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	a, err := WriteReviewsModule(filepath.Join(dir, "a.ts"), sampleSet(), ModuleOptions{TypeScript: true})
	if err != nil {
		t.Fatal(err)
	}
	b, err := WriteReviewsModule(filepath.Join(dir, "b.ts"), sampleSet(), ModuleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same payload, different fingerprints: %s vs %s", a, b)
	}

	other := sampleSet()
	other.Put("nefol-hair-oil", nil)
	c, err := WriteReviewsModule(filepath.Join(dir, "c.ts"), other, ModuleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Fatalf("different payloads share fingerprint %s", a)
	}
}

func TestReadFingerprintMissingFile(t *testing.T) {
	got, err := ReadFingerprint(filepath.Join(t.TempDir(), "nope.ts"))
	if err != nil || got != "" {
		t.Fatalf("ReadFingerprint(missing) = %q, %v", got, err)
	}
}

func TestWriteTextCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "2026", "products_profile.md")
	report := catalog.BuildProfile(nil, catalog.BuildStats{RowsRead: 2, SkippedNoSlug: 2})
	if err := WriteText(path, report); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != report {
		t.Fatalf("report changed on write:\n%s", b)
	}
}
