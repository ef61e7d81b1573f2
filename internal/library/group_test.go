package library

import (
	"testing"

	"lingolab/internal/models"
)

func TestGroupAudio(t *testing.T) {
	files := []models.AudioFile{
		{Name: "a", Book: "Cambridge IELTS 10", Test: "1"},
		{Name: "b", Book: "Cambridge IELTS 10", Test: "2"},
		{Name: "c", Book: "Cambridge IELTS 10", Test: "1"},
		{Name: "d", Book: "Cambridge IELTS 9", Test: "1"},
	}

	groups := GroupAudio(files)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	wantKeys := []string{"Cambridge IELTS 10 - Test 1", "Cambridge IELTS 10 - Test 2", "Cambridge IELTS 9 - Test 1"}
	for i, k := range wantKeys {
		if groups[i].Key != k {
			t.Errorf("groups[%d].Key = %q, want %q", i, groups[i].Key, k)
		}
	}
	if len(groups[0].Files) != 2 || groups[0].Files[0].Name != "a" || groups[0].Files[1].Name != "c" {
		t.Errorf("first group should hold a then c, got %+v", groups[0].Files)
	}
}

func TestFilterMaterials(t *testing.T) {
	items := []models.MaterialItem{
		{Name: "1", Category: CategoryIELTS},
		{Name: "2", Category: CategoryTOEFL},
		{Name: "3", Category: CategoryIELTS},
	}

	tests := []struct {
		category string
		want     int
	}{
		{"", 3},
		{"all", 3},
		{"ALL", 3},
		{"IELTS", 2},
		{"TOEFL", 1},
		{"ielts", 0},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := FilterMaterials(items, tt.category); len(got) != tt.want {
				t.Errorf("FilterMaterials(%q) returned %d items, want %d", tt.category, len(got), tt.want)
			}
		})
	}
}

func TestViewer(t *testing.T) {
	var v Viewer
	v.Open("Cambridge IELTS 10/Reading.pdf")
	if !v.Visible || v.Source != "/pdfs/Cambridge IELTS 10/Reading.pdf" || v.Title != "Reading.pdf" {
		t.Errorf("unexpected open viewer %+v", v)
	}
	v.Close()
	if v.Visible || v.Source != "" {
		t.Errorf("viewer should be cleared after Close, got %+v", v)
	}
}
