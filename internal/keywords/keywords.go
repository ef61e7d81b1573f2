// Package keywords pulls the content words out of an exam question and looks
// for them, or their usual paraphrases, in a reading passage.
package keywords

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// ErrEmptyInput is returned when a required question, text or keyword list is blank
var ErrEmptyInput = errors.New("input is empty")

const contextRadius = 50

var (
	nonWord    = regexp.MustCompile(`[^\w\s\-]`)
	whitespace = regexp.MustCompile(`\s+`)
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
)

// contentTags are the Penn Treebank tags of nouns, verbs, adjectives and adverbs
var contentTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
	"VB": true, "VBD": true, "VBG": true, "VBN": true, "VBP": true, "VBZ": true,
	"JJ": true, "JJR": true, "JJS": true,
	"RB": true, "RBR": true, "RBS": true,
}

// TaggedWord is a question word with its part-of-speech tag
type TaggedWord struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// Extraction is the split of a question into keywords and filler
type Extraction struct {
	Keywords      []string            `json:"keywords"`
	FilteredWords []string            `json:"filtered_words"`
	PosTags       []TaggedWord        `json:"pos_tags"`
	Synonyms      map[string][]string `json:"synonyms"`
}

// Extract finds the keywords of question together with their synonyms.
// Only content words (nouns, verbs, adjectives, adverbs) qualify.
func Extract(question string) Extraction {
	ex := Extraction{
		Keywords:      []string{},
		FilteredWords: []string{},
		PosTags:       []TaggedWord{},
		Synonyms:      map[string][]string{},
	}
	for _, tw := range tag(clean(question)) {
		ex.PosTags = append(ex.PosTags, tw)
		if isKeyword(tw) {
			ex.Keywords = append(ex.Keywords, tw.Word)
			ex.Synonyms[tw.Word] = Synonyms(tw.Word)
			continue
		}
		ex.FilteredWords = append(ex.FilteredWords, tw.Word)
	}
	return ex
}

// tag assigns a part of speech to every whitespace-separated word of text.
// A word the tagger splits (a hyphenated compound, say) takes the tag of
// its last piece.
func tag(text string) []TaggedWord {
	words := strings.Fields(text)
	out := make([]TaggedWord, 0, len(words))
	if len(words) == 0 {
		return out
	}

	var toks []prose.Token
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err == nil {
		toks = doc.Tokens()
	}

	j := 0
	for _, w := range words {
		tw := TaggedWord{Word: w}
		var acc strings.Builder
		for j < len(toks) && acc.Len() < len(w) {
			acc.WriteString(toks[j].Text)
			tw.Tag = toks[j].Tag
			j++
		}
		out = append(out, tw)
	}
	return out
}

func clean(text string) string {
	text = whitespace.ReplaceAllString(text, " ")
	text = nonWord.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func isKeyword(tw TaggedWord) bool {
	return contentTags[tw.Tag] &&
		!fillerWords[strings.ToLower(tw.Word)] &&
		len([]rune(tw.Word)) > 1 &&
		!digitsOnly.MatchString(tw.Word)
}

// Synonyms returns the table entry for word plus every headword listing it,
// sorted and without duplicates.
func Synonyms(word string) []string {
	word = strings.ToLower(word)
	seen := map[string]bool{}
	out := []string{}
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, s := range synonymTable[word] {
		add(s)
	}
	for key, set := range synonymTable {
		if slices.Contains(set, word) {
			add(key)
		}
	}
	slices.Sort(out)
	return out
}

// Match is one occurrence of a keyword or synonym in a passage
type Match struct {
	Type            string `json:"type"`
	Word            string `json:"word"`
	OriginalKeyword string `json:"original_keyword,omitempty"`
	Position        int    `json:"position"`
	Context         string `json:"context"`
}

const (
	MatchDirect  = "direct"
	MatchSynonym = "synonym"
)

// FindMatches locates each keyword and each of its synonyms in text,
// case-insensitively. Positions count characters, not bytes.
func FindMatches(keywords []string, text string) map[string][]Match {
	src := []rune(text)
	lower := make([]rune, len(src))
	for i, r := range src {
		lower[i] = unicode.ToLower(r)
	}

	matches := make(map[string][]Match, len(keywords))
	for _, kw := range keywords {
		found := []Match{}
		for _, pos := range indexAll(lower, []rune(strings.ToLower(kw))) {
			found = append(found, Match{
				Type:     MatchDirect,
				Word:     kw,
				Position: pos,
				Context:  window(src, pos, len([]rune(kw))),
			})
		}
		for _, syn := range Synonyms(kw) {
			for _, pos := range indexAll(lower, []rune(syn)) {
				found = append(found, Match{
					Type:            MatchSynonym,
					Word:            syn,
					OriginalKeyword: kw,
					Position:        pos,
					Context:         window(src, pos, len([]rune(syn))),
				})
			}
		}
		matches[kw] = found
	}
	return matches
}

// indexAll returns every start offset of needle in hay, overlaps included
func indexAll(hay, needle []rune) []int {
	var out []int
	if len(needle) == 0 {
		return out
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		if slices.Equal(hay[i:i+len(needle)], needle) {
			out = append(out, i)
		}
	}
	return out
}

func window(src []rune, pos, n int) string {
	start := max(0, pos-contextRadius)
	end := min(len(src), pos+n+contextRadius)
	return string(src[start:end])
}

// Statistics summarises how well a passage covers a question's keywords
type Statistics struct {
	TotalKeywords       int     `json:"total_keywords"`
	KeywordsWithMatches int     `json:"keywords_with_matches"`
	MatchCoverage       float64 `json:"match_coverage"`
	TotalMatches        int     `json:"total_matches"`
}

// Analysis is the full question-against-passage report
type Analysis struct {
	Question   string             `json:"question"`
	Text       string             `json:"text"`
	Extraction Extraction         `json:"extraction"`
	Matches    map[string][]Match `json:"matches"`
	Statistics Statistics         `json:"statistics"`
}

// Analyze extracts keywords from question and finds them in text
func Analyze(question, text string) (Analysis, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(text) == "" {
		return Analysis{}, ErrEmptyInput
	}
	ex := Extract(question)
	matches := FindMatches(ex.Keywords, text)

	stats := Statistics{TotalKeywords: len(ex.Keywords)}
	for _, m := range matches {
		if len(m) > 0 {
			stats.KeywordsWithMatches++
		}
		stats.TotalMatches += len(m)
	}
	if stats.TotalKeywords > 0 {
		cov := float64(stats.KeywordsWithMatches) / float64(stats.TotalKeywords) * 100
		stats.MatchCoverage = math.Round(cov*100) / 100
	}

	return Analysis{
		Question:   question,
		Text:       text,
		Extraction: ex,
		Matches:    matches,
		Statistics: stats,
	}, nil
}

// TotalMatches counts every match across keywords
func TotalMatches(matches map[string][]Match) int {
	n := 0
	for _, m := range matches {
		n += len(m)
	}
	return n
}

// Summary renders the extraction as a short study note
func Summary(question string) string {
	ex := Extract(question)

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Keywords (%d):\n", len(ex.Keywords))
	for i, kw := range ex.Keywords {
		syns := ex.Synonyms[kw]
		fmt.Fprintf(&b, "%d. %s", i+1, kw)
		if len(syns) > 0 {
			fmt.Fprintf(&b, " (Synonyms: %s)", strings.Join(syns[:min(3, len(syns))], ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nFiltered words (%d): %s", len(ex.FilteredWords), strings.Join(ex.FilteredWords, ", "))
	return b.String()
}
