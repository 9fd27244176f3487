package review

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Set maps product slugs to their reviews and remembers insertion order, so
// encoded output is stable across runs.
type Set struct {
	slugs   []string
	reviews map[string][]Review
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{reviews: map[string][]Review{}}
}

// Put stores reviews under slug. Replacing an existing slug keeps its position.
func (s *Set) Put(slug string, reviews []Review) {
	if _, ok := s.reviews[slug]; !ok {
		s.slugs = append(s.slugs, slug)
	}
	s.reviews[slug] = reviews
}

// Get returns the reviews for slug.
func (s *Set) Get(slug string) ([]Review, bool) {
	r, ok := s.reviews[slug]
	return r, ok
}

// Slugs returns slugs in insertion order.
func (s *Set) Slugs() []string {
	return append([]string(nil), s.slugs...)
}

// Len is the number of products.
func (s *Set) Len() int { return len(s.slugs) }

// Total is the number of reviews across all products.
func (s *Set) Total() int {
	n := 0
	for _, r := range s.reviews {
		n += len(r)
	}
	return n
}

// MarshalJSON encodes the set as an object whose keys follow insertion order.
// Its own output leaves HTML characters unescaped, but json.Marshal escapes
// them again; only an Encoder with SetEscapeHTML(false) keeps "&" and "<".
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, slug := range s.slugs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(slug)
		if err != nil {
			return nil, err
		}
		reviews := s.reviews[slug]
		if reviews == nil {
			reviews = []Review{}
		}
		v, err := marshalNoEscape(reviews)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of slug -> reviews, keeping key order.
func (s *Set) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("review set: expected object, got %v", tok)
	}
	*s = Set{reviews: map[string][]Review{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		slug, ok := tok.(string)
		if !ok {
			return fmt.Errorf("review set: expected slug key, got %v", tok)
		}
		var reviews []Review
		if err := dec.Decode(&reviews); err != nil {
			return fmt.Errorf("review set: slug %q: %w", slug, err)
		}
		s.Put(slug, reviews)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// LoadSet reads a reviews JSON file.
func LoadSet(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := NewSet()
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
