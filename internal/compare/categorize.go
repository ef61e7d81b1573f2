package compare

import (
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/pmezard/go-difflib/difflib"
)

// Category classifies a transcription error
type Category string

const (
	Grammar    Category = "grammar"
	Spelling   Category = "spelling"
	Listening  Category = "listening"
	Vocabulary Category = "vocabulary"
)

// Categories lists the recognised error categories in display order
var Categories = []Category{Grammar, Spelling, Listening, Vocabulary}

var homophones = map[string]string{
	"their":   "there",
	"they're": "there",
	"there":   "their",
	"its":     "it's",
	"it's":    "its",
	"your":    "you're",
	"you're":  "your",
	"too":     "to",
	"to":      "too",
	"hear":    "here",
	"here":    "hear",
}

var functionWords = map[string]bool{
	// articles
	"a": true, "an": true, "the": true,
	// prepositions
	"in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "from": true, "to": true,
}

// Categorize decides which kind of mistake turned correct into user.
// Checks run in order and the first hit wins.
func Categorize(user, correct string) Category {
	u := strings.ToLower(strings.TrimSpace(user))
	c := strings.ToLower(strings.TrimSpace(correct))

	similarity := CharRatio(u, c)
	if similarity > 0.7 && similarity < 1.0 {
		return Spelling
	}
	if h, ok := homophones[u]; ok && h == c {
		return Spelling
	}
	if functionWords[u] || functionWords[c] {
		return Grammar
	}
	if similarity < 0.5 {
		return Vocabulary
	}
	return Listening
}

// CharRatio is the SequenceMatcher similarity of a and b over characters
func CharRatio(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

// SoundsAlike reports whether two different single words share a Double
// Metaphone code. It does not affect the category; it is reported alongside.
func SoundsAlike(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b || a == "" || b == "" || strings.ContainsRune(a, ' ') || strings.ContainsRune(b, ' ') {
		return false
	}
	ap, as := matchr.DoubleMetaphone(a)
	bp, bs := matchr.DoubleMetaphone(b)
	if ap == "" || bp == "" {
		return false
	}
	return ap == bp || (as != "" && as == bs)
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
