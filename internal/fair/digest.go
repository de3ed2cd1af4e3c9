package fair

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashHex computes the SHA-256 digest of input and returns it as 64
// lowercase hex characters.
func HashHex(input []byte) string {
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// VerifySeedHash reports whether claimedHex is the SHA-256 commitment of
// seed. The operator publishes hash(seed) before play and reveals seed
// after, so a matching hash proves the seed was fixed in advance.
// Comparison is case-insensitive.
func VerifySeedHash(seed, claimedHex string) bool {
	return HashHex([]byte(seed)) == strings.ToLower(claimedHex)
}
