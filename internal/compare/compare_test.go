package compare

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	if got := Normalize("  The   Cat\n\tSat. "); got != "the cat sat." {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		reference string
		userHTML  string
		refHTML   string
		errors    []Error
		accuracy  float64
	}{
		{
			name:      "identical after normalising",
			user:      "The   cat sat.",
			reference: "the cat sat.",
			userHTML:  `<span class="correct-word">the cat sat.</span>`,
			refHTML:   `<span class="correct-word">the cat sat.</span>`,
			errors:    []Error{},
			accuracy:  100,
		},
		{
			name:      "missing word is a listening error",
			user:      "the cat sat on mat",
			reference: "the cat sat on the mat",
			userHTML:  `<span class="correct-word">the cat sat on</span> <span class="correct-word">mat</span>`,
			refHTML:   `<span class="correct-word">the cat sat on</span> <span class="correct-word">the</span> <span class="correct-word">mat</span>`,
			errors:    []Error{{CorrectWord: "the", Category: Listening, Position: 4}},
			accuracy:  83.33,
		},
		{
			name:      "misspelling",
			user:      "I recieve letters",
			reference: "I receive letters",
			userHTML:  `<span class="correct-word">i</span> <span class="error-word spelling-error">recieve</span> <span class="correct-word">letters</span>`,
			refHTML:   `<span class="correct-word">i</span> <span class="correct-word">receive</span> <span class="correct-word">letters</span>`,
			errors:    []Error{{UserWord: "recieve", CorrectWord: "receive", Category: Spelling, Position: 1, PhoneticMatch: true}},
			accuracy:  66.67,
		},
		{
			name:      "extra word",
			user:      "the the cat",
			reference: "the cat",
			userHTML:  `<span class="error-word listening-error">the</span> <span class="correct-word">the cat</span>`,
			refHTML:   `<span class="correct-word">the cat</span>`,
			errors:    []Error{{UserWord: "the", Category: Listening, Position: 0}},
			accuracy:  100,
		},
		{
			name:      "escapes and sentence breaks",
			user:      "Tom & Jerry. Again",
			reference: "tom & jerry. again",
			userHTML:  `<span class="correct-word">tom &amp; jerry.<br>again</span>`,
			refHTML:   `<span class="correct-word">tom &amp; jerry.<br>again</span>`,
			errors:    []Error{},
			accuracy:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.user, tt.reference)
			if got.UserHTML != tt.userHTML {
				t.Errorf("UserHTML = %s\nwant       %s", got.UserHTML, tt.userHTML)
			}
			if got.ReferenceHTML != tt.refHTML {
				t.Errorf("ReferenceHTML = %s\nwant            %s", got.ReferenceHTML, tt.refHTML)
			}
			if got.Accuracy != tt.accuracy {
				t.Errorf("Accuracy = %v, want %v", got.Accuracy, tt.accuracy)
			}
			if len(got.Errors) != len(tt.errors) {
				t.Fatalf("Errors = %+v, want %+v", got.Errors, tt.errors)
			}
			for i := range tt.errors {
				if got.Errors[i] != tt.errors[i] {
					t.Errorf("Errors[%d] = %+v, want %+v", i, got.Errors[i], tt.errors[i])
				}
			}
		})
	}
}

func TestCompareWordTotals(t *testing.T) {
	got := Compare("one two three", "one two")
	if got.TotalWordsUser != 3 || got.TotalWordsReference != 2 {
		t.Errorf("totals = %d/%d, want 3/2", got.TotalWordsUser, got.TotalWordsReference)
	}
}

func TestCompareEmptyReference(t *testing.T) {
	got := Compare("something", "   ")
	if got.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0 for empty reference", got.Accuracy)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		user    string
		correct string
		want    Category
	}{
		{"recieve", "receive", Spelling},
		{"their", "there", Spelling},
		{"in", "on", Grammar},
		{"a", "the", Grammar},
		{"for", "because", Grammar},
		{"cut", "cat", Listening},
		{"write", "right", Listening},
		{"sea", "see", Listening},
		{"cat", "elephant", Vocabulary},
		{"hat", "cat", Listening},
	}

	for _, tt := range tests {
		t.Run(tt.user+"->"+tt.correct, func(t *testing.T) {
			if got := Categorize(tt.user, tt.correct); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %s, want %s", tt.user, tt.correct, got, tt.want)
			}
		})
	}
}

func TestSoundsAlike(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"write", "right", true},
		{"Sea", "see", true},
		{"cat", "elephant", false},
		{"same", "same", false},
		{"two words", "to words", false},
		{"", "see", false},
	}
	for _, tt := range tests {
		if got := SoundsAlike(tt.a, tt.b); got != tt.want {
			t.Errorf("SoundsAlike(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestComparePhoneticMatchKeepsCategory(t *testing.T) {
	got := Compare("I right letters", "I write letters")
	if len(got.Errors) != 1 {
		t.Fatalf("errors = %+v", got.Errors)
	}
	e := got.Errors[0]
	if e.Category != Listening || !e.PhoneticMatch {
		t.Errorf("error = %+v, want listening with phonetic match", e)
	}
}

func TestCharRatio(t *testing.T) {
	if r := CharRatio("abc", "abc"); r != 1 {
		t.Errorf("identical ratio = %v", r)
	}
	if r := CharRatio("abc", "xyz"); r != 0 {
		t.Errorf("disjoint ratio = %v", r)
	}
}
