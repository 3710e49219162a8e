// Package normalize provides company-name normalization and token
// similarity. The same normalizer is applied to job company names and
// sponsor registry names so comparisons are symmetric.
package normalize

import (
	"regexp"
	"strings"
)

// legalSuffixes strips the legal-entity suffixes and country words that
// appear in registry names but rarely in job board names.
var legalSuffixes = regexp.MustCompile(`(?i)\b(b\.?v\.?|n\.?v\.?|ltd\.?|inc\.?|gmbh|ag|s\.?a\.?|plc|llc|co\.?|corp\.?|holding|group|international|netherlands|nederland)\b`)

var nonWord = regexp.MustCompile(`[^\w\s]`)

var whitespace = regexp.MustCompile(`\s+`)

// CompanyName lower-cases a company name, strips legal suffixes and
// punctuation, and collapses whitespace.
func CompanyName(name string) string {
	s := strings.ToLower(name)
	s = legalSuffixes.ReplaceAllString(s, "")
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens splits a normalized name into its comparison tokens. Single-rune
// tokens carry no signal (stray initials, stripped suffix remnants) and
// are excluded.
func Tokens(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, t := range strings.Fields(s) {
		if len(t) > 1 {
			tokens[t] = true
		}
	}
	return tokens
}

// TokenSimilarity computes the Sørensen–Dice token overlap between two
// normalized names: 2·|A∩B| / (|A|+|B|). It is commutative and returns
// 0 when either side has no usable tokens.
func TokenSimilarity(a, b string) float64 {
	tokensA := Tokens(a)
	tokensB := Tokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for t := range tokensA {
		if tokensB[t] {
			intersection++
		}
	}
	return float64(2*intersection) / float64(len(tokensA)+len(tokensB))
}
