package sources

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestInNetherlands(t *testing.T) {
	assert.True(t, InNetherlands("Amsterdam, Netherlands"))
	assert.True(t, InNetherlands("Rotterdam"))
	assert.True(t, InNetherlands("The Hague Area"))
	assert.False(t, InNetherlands("Berlin, Germany"))
	assert.False(t, InNetherlands(""))
}

func TestMatchesKeyword(t *testing.T) {
	assert.True(t, MatchesKeyword("go", "Senior Go Developer"))
	assert.True(t, MatchesKeyword("PYTHON", "Engineer", "We use Python daily"))
	assert.False(t, MatchesKeyword("rust", "Java Developer", "JVM shop"))
	assert.True(t, MatchesKeyword("", "anything"), "empty keyword matches everything")
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", StripHTML("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "plain", StripHTML("plain"))
}

func TestTruncateDescription_Bounds(t *testing.T) {
	long := strings.Repeat("x", maxDescriptionChars+500)
	assert.Len(t, TruncateDescription(long), maxDescriptionChars)
}

func TestTruncateDescription_CutsOnRuneBoundary(t *testing.T) {
	// "é" is two bytes; an odd-length ASCII prefix puts the byte limit
	// in the middle of a rune.
	long := strings.Repeat("x", maxDescriptionChars-1) + strings.Repeat("é", 300)
	got := TruncateDescription(long)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, maxDescriptionChars-1)
}

func TestFirstSegment(t *testing.T) {
	assert.Equal(t, "Amsterdam", FirstSegment("Amsterdam, Noord-Holland, Netherlands"))
	assert.Equal(t, "Utrecht", FirstSegment("Utrecht"))
}
