package keywords

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	ex := Extract("The majority of energy was generated by electricity in 2020?")

	wantKeywords := []string{"majority", "energy", "generated", "electricity"}
	if !slices.Equal(ex.Keywords, wantKeywords) {
		t.Errorf("Keywords = %v, want %v", ex.Keywords, wantKeywords)
	}
	wantFiltered := []string{"The", "of", "was", "by", "in", "2020"}
	if !slices.Equal(ex.FilteredWords, wantFiltered) {
		t.Errorf("FilteredWords = %v, want %v", ex.FilteredWords, wantFiltered)
	}
	if !slices.Contains(ex.Synonyms["energy"], "power") {
		t.Errorf("energy synonyms = %v", ex.Synonyms["energy"])
	}
}

func TestExtractDropsFunctionWords(t *testing.T) {
	ex := Extract("What is the main reason about which the author writes?")

	want := []string{"main", "reason", "author", "writes"}
	if !slices.Equal(ex.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", ex.Keywords, want)
	}
	for _, w := range []string{"What", "about", "which"} {
		if !slices.Contains(ex.FilteredWords, w) {
			t.Errorf("%q should be filtered, got %v", w, ex.FilteredWords)
		}
	}
}

func TestExtractPosTags(t *testing.T) {
	ex := Extract("Which country exports more wheat?")

	if len(ex.PosTags) != 5 {
		t.Fatalf("PosTags = %+v", ex.PosTags)
	}
	tags := map[string]string{}
	for _, tw := range ex.PosTags {
		tags[tw.Word] = tw.Tag
	}
	if tags["Which"] != "WDT" {
		t.Errorf("Which tagged %q", tags["Which"])
	}
	if tags["wheat"] != "NN" {
		t.Errorf("wheat tagged %q", tags["wheat"])
	}
	if slices.Contains(ex.Keywords, "Which") || !slices.Contains(ex.Keywords, "wheat") {
		t.Errorf("Keywords = %v", ex.Keywords)
	}
}

func TestExtractEmpty(t *testing.T) {
	ex := Extract("  ?! ")
	if len(ex.Keywords) != 0 || len(ex.PosTags) != 0 {
		t.Errorf("extraction = %+v", ex)
	}
}

func TestExtractKeepsHyphens(t *testing.T) {
	ex := Extract("Is well-being improving?")
	if !slices.Contains(ex.Keywords, "well-being") {
		t.Errorf("Keywords = %v", ex.Keywords)
	}
}

func TestSynonyms(t *testing.T) {
	got := Synonyms("Power")
	for _, want := range []string{"ability", "electricity", "energy"} {
		if !slices.Contains(got, want) {
			t.Errorf("Synonyms(power) missing %q: %v", want, got)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("Synonyms should be sorted: %v", got)
	}

	// impact is both a headword and listed under other headwords
	impact := Synonyms("impact")
	seen := map[string]bool{}
	for _, s := range impact {
		if seen[s] {
			t.Errorf("duplicate synonym %q", s)
		}
		seen[s] = true
	}
	if len(Synonyms("zebra")) != 0 {
		t.Error("unknown word should have no synonyms")
	}
}

func TestFindMatches(t *testing.T) {
	text := "Most power in the region was produced through electrical sources."
	matches := FindMatches([]string{"energy", "generated"}, text)

	energy := matches["energy"]
	if len(energy) != 1 || energy[0].Type != MatchSynonym || energy[0].Word != "power" || energy[0].OriginalKeyword != "energy" {
		t.Fatalf("energy matches = %+v", energy)
	}
	if energy[0].Position != strings.Index(text, "power") {
		t.Errorf("Position = %d", energy[0].Position)
	}
	if want := text[:60]; energy[0].Context != want {
		t.Errorf("Context = %q, want %q", energy[0].Context, want)
	}

	generated := matches["generated"]
	if len(generated) != 1 || generated[0].Word != "produced" {
		t.Errorf("generated matches = %+v", generated)
	}
}

func TestFindMatchesDirectAndContext(t *testing.T) {
	text := strings.Repeat("x", 60) + "Research" + strings.Repeat("y", 60)
	m := FindMatches([]string{"research"}, text)["research"]
	if len(m) == 0 || m[0].Type != MatchDirect || m[0].Position != 60 {
		t.Fatalf("matches = %+v", m)
	}
	want := strings.Repeat("x", 50) + "Research" + strings.Repeat("y", 50)
	if m[0].Context != want {
		t.Errorf("Context = %q", m[0].Context)
	}
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze("The majority of energy was generated by electricity.",
		"Most power in the region was produced through electrical sources and other forms of generation.")
	if err != nil {
		t.Fatal(err)
	}
	if a.Statistics.TotalKeywords != 4 {
		t.Errorf("TotalKeywords = %d", a.Statistics.TotalKeywords)
	}
	if a.Statistics.TotalMatches != TotalMatches(a.Matches) {
		t.Error("TotalMatches disagrees with matches")
	}
	if a.Statistics.MatchCoverage <= 0 || a.Statistics.MatchCoverage > 100 {
		t.Errorf("MatchCoverage = %v", a.Statistics.MatchCoverage)
	}

	if _, err := Analyze(" ", "text"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	s := Summary("Energy of the economy")
	if !strings.HasPrefix(s, "Question: Energy of the economy\n\nKeywords (2):\n1. Energy (Synonyms: ") {
		t.Errorf("unexpected summary:\n%s", s)
	}
	if !strings.HasSuffix(s, "Filtered words (2): of, the") {
		t.Errorf("unexpected summary tail:\n%s", s)
	}
}
