package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Marshal encodes v with 2-space indentation and without HTML escaping, so
// ingredient names like "AHA & BHA" survive verbatim. The result ends in a
// newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes v to path, creating parent directories.
func WriteJSON(path string, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, b)
}

// WriteText writes a text artifact such as a markdown report, creating
// parent directories.
func WriteText(path, text string) error {
	return writeFile(path, []byte(text))
}

// Fingerprint is the xxh64 digest of payload as 16 hex digits.
func Fingerprint(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

func writeFile(path string, b []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}
