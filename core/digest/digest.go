// Package digest computes the content hashes recorded for every converted
// chant source.
package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// HashResult contains both SHA-256 and BLAKE3 hashes of a source.
type HashResult struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Sum hashes data with both algorithms.
func Sum(data []byte) HashResult {
	return HashResult{
		SHA256: SHA256Hash(data),
		BLAKE3: Blake3Hash(data),
	}
}

// SHA256Hash computes the SHA-256 hash of data as lowercase hex.
func SHA256Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Blake3Hash computes the BLAKE3 hash of data as lowercase hex.
func Blake3Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// IsValidHash reports whether s looks like a 256-bit lowercase hex digest.
func IsValidHash(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
