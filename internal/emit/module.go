package emit

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"catalogseed/internal/review"
)

const fingerprintPrefix = "// Fingerprint: xxh64:"

// ModuleOptions controls the generated front-end module.
type ModuleOptions struct {
	// Header lines are written as line comments below the title.
	Header []string
	// TypeScript adds type annotations and the cache-first accessors. Without
	// it only getProductReviews is emitted.
	TypeScript bool
}

// WriteReviewsModule writes set as an importable module exposing
// productReviews and its accessor functions. It returns the payload
// fingerprint recorded in the header.
func WriteReviewsModule(path string, set *review.Set, opts ModuleOptions) (string, error) {
	payload, err := Marshal(set)
	if err != nil {
		return "", fmt.Errorf("encode reviews: %w", err)
	}
	payload = bytes.TrimRight(payload, "\n")
	sum := Fingerprint(payload)

	var b strings.Builder
	b.WriteString("// Product Reviews Data\n")
	for _, h := range opts.Header {
		b.WriteString("// " + h + "\n")
	}
	b.WriteString(fingerprintPrefix + sum + "\n\n")
	b.WriteString("export const productReviews = ")
	b.Write(payload)
	b.WriteString(";\n\n")
	if opts.TypeScript {
		b.WriteString(tsAccessors)
	} else {
		b.WriteString(jsAccessors)
	}
	if err := writeFile(path, []byte(b.String())); err != nil {
		return "", err
	}
	return sum, nil
}

// ReadFingerprint returns the payload fingerprint from a module written by
// WriteReviewsModule. A missing file yields "" and no error.
func ReadFingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "//") {
			break
		}
		if strings.HasPrefix(line, fingerprintPrefix) {
			return strings.TrimPrefix(line, fingerprintPrefix), nil
		}
	}
	return "", sc.Err()
}

const jsAccessors = `// Helper function to get reviews for a product by slug
export function getProductReviews(slug) {
  return productReviews[slug] || [];
}
`

const tsAccessors = `// Review stats cache, resolved lazily to avoid circular imports
let getCachedReviewStats: ((slug: string) => { average_rating: number; review_count: number; verified_count: number }) | null = null

function getCacheFunction() {
  if (!getCachedReviewStats) {
    try {
      const cacheModule = require('../hooks/useProductReviewStats')
      getCachedReviewStats = cacheModule.getCachedReviewStats
    } catch (e) {
      return null
    }
  }
  return getCachedReviewStats
}

export function getProductReviews(slug: string) {
  return productReviews[slug as keyof typeof productReviews] || [];
}

// Average rating, cache first, static data otherwise
export function getProductRating(slug: string): number {
  const cacheFn = getCacheFunction()
  if (cacheFn) {
    try {
      const dbStats = cacheFn(slug)
      if (dbStats && dbStats.review_count > 0) {
        return dbStats.average_rating
      }
    } catch (e) {
      // static data below
    }
  }

  const reviews = getProductReviews(slug)
  if (reviews.length === 0) return 0
  const sum = reviews.reduce((acc, review) => acc + review.rating, 0)
  return parseFloat((sum / reviews.length).toFixed(2))
}

// Review count, cache first, static data otherwise
export function getProductReviewCount(slug: string): number {
  const cacheFn = getCacheFunction()
  if (cacheFn) {
    try {
      const dbStats = cacheFn(slug)
      if (dbStats && dbStats.review_count > 0) {
        return dbStats.review_count
      }
    } catch (e) {
      // static data below
    }
  }

  return getProductReviews(slug).length
}

// Verified badge: any cached verified review or any review at all
export function hasVerifiedReviews(slug: string): boolean {
  const cacheFn = getCacheFunction()
  if (cacheFn) {
    try {
      const dbStats = cacheFn(slug)
      if (dbStats && (dbStats.verified_count > 0 || dbStats.review_count > 0)) {
        return true
      }
    } catch (e) {
      // static data below
    }
  }

  const reviews = getProductReviews(slug)
  if (reviews.length === 0) return false
  const hasVerified = reviews.some((review: any) => review.isVerified === true || review.is_verified === true)
  return hasVerified || reviews.length > 0
}
`
