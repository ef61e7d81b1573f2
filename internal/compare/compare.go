// Package compare diffs a learner's transcription against a reference
// transcript word by word and classifies each mistake.
package compare

import (
	"math"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Error is one mismatched run of words
type Error struct {
	UserWord    string   `json:"user_word"`
	CorrectWord string   `json:"correct_word"`
	Category    Category `json:"category"`
	Position    int      `json:"position"`

	// PhoneticMatch marks a replaced word that sounds like the correct one
	PhoneticMatch bool `json:"phonetic_match,omitempty"`
}

// Result is the rendered outcome of a comparison
type Result struct {
	UserHTML            string  `json:"user_html"`
	ReferenceHTML       string  `json:"reference_html"`
	Errors              []Error `json:"errors"`
	Accuracy            float64 `json:"accuracy"`
	TotalWordsUser      int     `json:"total_words_user"`
	TotalWordsReference int     `json:"total_words_reference"`
}

var whitespace = regexp.MustCompile(`\s+`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Normalize collapses whitespace runs and lowercases text
func Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(whitespace.ReplaceAllString(text, " ")))
}

// Compare diffs user against reference. Both sides are normalized first.
func Compare(user, reference string) Result {
	userWords := strings.Fields(Normalize(user))
	refWords := strings.Fields(Normalize(reference))

	matcher := difflib.NewMatcher(userWords, refWords)

	var userParts, refParts []string
	errs := []Error{}
	equal := 0
	userPos := 0

	for _, op := range matcher.GetOpCodes() {
		userSeg := strings.Join(userWords[op.I1:op.I2], " ")
		refSeg := strings.Join(refWords[op.J1:op.J2], " ")

		switch op.Tag {
		case 'e':
			equal += op.I2 - op.I1
			userParts = append(userParts, span("correct-word", userSeg))
			refParts = append(refParts, span("correct-word", refSeg))
		case 'r':
			cat := Categorize(userSeg, refSeg)
			errs = append(errs, Error{
				UserWord:      userSeg,
				CorrectWord:   refSeg,
				Category:      cat,
				Position:      userPos,
				PhoneticMatch: SoundsAlike(userSeg, refSeg),
			})
			userParts = append(userParts, span("error-word "+string(cat)+"-error", userSeg))
			refParts = append(refParts, span("correct-word", refSeg))
		case 'd':
			errs = append(errs, Error{UserWord: userSeg, Category: Listening, Position: userPos})
			userParts = append(userParts, span("error-word listening-error", userSeg))
		case 'i':
			errs = append(errs, Error{CorrectWord: refSeg, Category: Listening, Position: userPos})
			refParts = append(refParts, span("correct-word", refSeg))
		}

		userPos += op.I2 - op.I1
	}

	return Result{
		UserHTML:            breakSentences(strings.Join(userParts, " ")),
		ReferenceHTML:       breakSentences(strings.Join(refParts, " ")),
		Errors:              errs,
		Accuracy:            accuracy(equal, len(refWords)),
		TotalWordsUser:      len(userWords),
		TotalWordsReference: len(refWords),
	}
}

func span(class, text string) string {
	return `<span class="` + class + `">` + htmlEscaper.Replace(text) + `</span>`
}

func breakSentences(s string) string {
	return strings.ReplaceAll(s, ". ", ".<br>")
}

// accuracy is the share of reference words matched, as a percentage to 2dp
func accuracy(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(total)*100*100) / 100
}
