package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
)

// digest returns the SHA-256 hex digest of the submitted bytes, before any normalization
func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
