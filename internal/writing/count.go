// Package writing holds the essay workspace: a word counter and the exam
// countdown.
package writing

import "strings"

// CountWords counts whitespace-separated words in text
func CountWords(text string) int {
	return len(strings.Fields(text))
}
