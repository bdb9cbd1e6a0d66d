// Package hashutil derives short deterministic identifiers.
package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Seed joins parts with NUL separators, so ("ab", "c") and ("a", "bc")
// produce different seeds.
func Seed(parts ...string) string {
	return strings.Join(parts, "\x00")
}

// Short returns a 7-character hex digest of seed.
func Short(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
