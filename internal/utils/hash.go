package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of plaintext. The
// transform is deterministic and salt-free so stored digests stay directly
// comparable across logins and password rotations. Known weakness: equal
// passwords share a digest.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
