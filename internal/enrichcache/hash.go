package enrichcache

import (
	"crypto/sha256"
	"encoding/hex"
)

// DescriptionHash returns the content hash of a listing's description
// text. Cache entries store the hash computed at enrichment time; a
// listing whose text has since changed hashes differently and must be
// re-enriched.
func DescriptionHash(description string) string {
	sum := sha256.Sum256([]byte(description))
	return hex.EncodeToString(sum[:])
}
