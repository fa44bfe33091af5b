package objects

import (
	"crypto/sha1"
	"encoding/hex"
)

// Fingerprint returns the 40-hex-digit SHA-1 digest of data. It is the sole
// identity primitive for blobs and commits; nothing in this package hashes
// anything by a different route.
func Fingerprint(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// ShortLen is the length of the abbreviated id recorded in the short-id
// table (spec §3, ref index).
const ShortLen = 8
