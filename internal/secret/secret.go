// Package secret loads the shared master secret used to authorize reads.
package secret

import (
	"crypto/subtle"
	"fmt"
	"os"
	"strings"
)

// Secret holds the master secret, loaded once at startup and immutable
// for the process lifetime.
type Secret struct {
	value []byte
}

// LoadFromFile reads the secret from a single-line plaintext file.
// Trailing whitespace and newlines are trimmed. An empty secret is
// rejected.
func LoadFromFile(path string) (*Secret, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading secret file %q: %w", path, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return nil, fmt.Errorf("secret file %q is empty", path)
	}

	return &Secret{value: []byte(value)}, nil
}

// Matches reports whether candidate equals the loaded secret.
// The comparison is constant-time.
func (s *Secret) Matches(candidate string) bool {
	return subtle.ConstantTimeCompare(s.value, []byte(candidate)) == 1
}
