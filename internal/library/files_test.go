package library

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	root := writeTree(t, "Cambridge IELTS 15/Test 1.pdf")

	tests := []struct {
		name    string
		rel     string
		wantErr error
	}{
		{"existing file", "Cambridge IELTS 15/Test 1.pdf", nil},
		{"parent escape", "../etc/passwd", ErrInvalidPath},
		{"embedded dots", "Cambridge IELTS 15/../../x.pdf", ErrInvalidPath},
		{"absolute", "/etc/passwd", ErrInvalidPath},
		{"empty", "", ErrInvalidPath},
		{"missing", "Cambridge IELTS 15/Test 2.pdf", ErrFileNotFound},
		{"directory", "Cambridge IELTS 15", ErrFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(root, tt.rel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.rel, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.rel, err)
			}
			if want := filepath.Join(root, "Cambridge IELTS 15", "Test 1.pdf"); got != want {
				t.Errorf("Resolve = %q, want %q", got, want)
			}
		})
	}
}
