package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key builds a namespaced cache key: "prefix:hash(part)". Hashing keeps
// arbitrary catalog URLs safe to use as keys in every backend.
func Key(prefix, part string) string {
	return prefix + ":" + Hash([]byte(part))
}
