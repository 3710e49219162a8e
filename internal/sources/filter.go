package sources

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxDescriptionChars bounds the description text every adapter keeps,
// so one verbose posting cannot blow up downstream payloads.
const maxDescriptionChars = 4000

// nlCityMarkers are the substrings that mark a location string as Dutch.
// The upstream boards have no reliable country field, so this stays a
// plain substring check.
var nlCityMarkers = []string{
	"netherlands", "nederland",
	"amsterdam", "rotterdam", "den haag", "the hague", "utrecht",
	"eindhoven", "tilburg", "groningen", "leiden", "delft", "breda",
	"arnhem", "maastricht", "haarlem", "almere", "nijmegen", "veldhoven",
}

// InNetherlands reports whether a raw location string refers to the
// Netherlands.
func InNetherlands(location string) bool {
	loc := strings.ToLower(location)
	for _, marker := range nlCityMarkers {
		if strings.Contains(loc, marker) {
			return true
		}
	}
	return false
}

// MatchesKeyword reports whether the keyword appears in any of the given
// fields. An empty keyword matches everything.
func MatchesKeyword(keyword string, fields ...string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), kw) {
			return true
		}
	}
	return false
}

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup tags from board-supplied rich text.
func StripHTML(s string) string {
	return htmlTags.ReplaceAllString(s, "")
}

// TruncateDescription cleans and bounds a description text. The cut
// falls on a rune boundary so the result stays valid UTF-8.
func TruncateDescription(s string) string {
	s = StripHTML(s)
	if len(s) > maxDescriptionChars {
		cut := maxDescriptionChars
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// FirstSegment returns the part of a comma-separated location string
// before the first comma, trimmed.
func FirstSegment(location string) string {
	part, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(part)
}
