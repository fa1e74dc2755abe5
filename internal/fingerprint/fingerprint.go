// Package fingerprint derives content fingerprints for submitted articles.
//
// The digest covers the content bytes alone: resubmitting identical content
// always produces the same fingerprint, which is what makes verify-by-
// fingerprint able to find a prior submission. Mixing in the title or a
// submission timestamp would break that lookup.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length of a hex-encoded fingerprint
const Size = sha256.Size * 2

// Sum returns the lowercase hex SHA-256 digest of content. Empty content
// is permitted and yields the digest of the empty byte sequence; rejecting
// missing content is the caller's concern.
func Sum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Valid reports whether s is shaped like a fingerprint: 64 lowercase hex
// characters
func Valid(s string) bool {
	if len(s) != Size {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
