package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLen is the number of hex characters kept from the hash.
const fingerprintLen = 16

// Fingerprint derives the cache key component for a search path.
// The path string is hashed exactly as given — no cleaning or
// canonicalization — so "/home/user" and "/home/user/" are distinct keys.
func Fingerprint(searchPath string) string {
	sum := sha256.Sum256([]byte(searchPath))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
