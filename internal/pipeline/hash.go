package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Fingerprint identifies source content by SHA-256 and BLAKE3.
type Fingerprint struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// FingerprintOf hashes data with both algorithms.
func FingerprintOf(data []byte) Fingerprint {
	b3 := blake3.Sum256(data)
	return Fingerprint{
		SHA256: ContentHashHex(data),
		BLAKE3: hex.EncodeToString(b3[:]),
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
