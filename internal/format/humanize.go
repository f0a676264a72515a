package format

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	caseBoundary = regexp.MustCompile(`([a-z\d])([A-Z]+)`)
	wordGaps     = regexp.MustCompile(`[-\s]+`)
)

// Humanize turns a machine-readable identifier into a readable label:
// "some_item_id" becomes "Some item", "someCamelCaseName" becomes
// "Some camel case name". Total over any input; the empty string maps to
// itself.
//
// The pipeline mirrors the label transform the Paper UI applies to
// configuration keys, including its second "_id"-strip pass. That pass is
// unreachable after the earlier lowercasing and underscore replacement,
// but it is kept so both sides produce identical labels.
func Humanize(text string) string {
	s := strings.TrimSpace(text)
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordGaps.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.TrimSuffix(s, "_id")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSuffix(s, "_id")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(s)
	return capitalizeFirst(s)
}

// capitalizeFirst upper-cases only the first rune, leaving the rest of the
// string untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
