package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lingolab/internal/library"
	"lingolab/internal/models"
)

func TestListMaterials(t *testing.T) {
	h := NewLibraryHandler(newTestLibrary(t))

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{bookPath, toeflPath}},
		{"?category=all", []string{bookPath, toeflPath}},
		{"?category=TOEFL", []string{toeflPath}},
		{"?category=IELTS", []string{bookPath}},
		{"?category=GRE", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ListMaterials(rec, newRequest(http.MethodGet, "/api/materials"+tt.query, ""))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			items := decodeBody[[]models.MaterialItem](t, rec)
			got := map[string]bool{}
			for _, it := range items {
				got[it.Path] = true
			}
			if len(items) != len(tt.want) {
				t.Fatalf("got %d items %+v, want %v", len(items), items, tt.want)
			}
			for _, w := range tt.want {
				if !got[w] {
					t.Errorf("missing %q in %+v", w, items)
				}
			}
		})
	}
}

func TestListAudioAndGroups(t *testing.T) {
	h := NewLibraryHandler(newTestLibrary(t))

	rec := httptest.NewRecorder()
	h.ListAudio(rec, newRequest(http.MethodGet, "/api/audio", ""))
	files := decodeBody[[]models.AudioFile](t, rec)
	if len(files) != 1 || files[0].Path != trackPath || files[0].Section != "2" {
		t.Fatalf("audio = %+v", files)
	}

	rec = httptest.NewRecorder()
	h.ListAudioGroups(rec, newRequest(http.MethodGet, "/api/audio/groups", ""))
	groups := decodeBody[[]models.AudioGroup](t, rec)
	if len(groups) != 1 || groups[0].Key != "Cambridge IELTS 15 - Test 1" {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestServeFile(t *testing.T) {
	h := NewLibraryHandler(newTestLibrary(t))

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"existing pdf", bookPath, http.StatusOK, "data"},
		{"parent traversal", "../etc/passwd", http.StatusBadRequest, "Invalid path"},
		{"absolute", "/etc/passwd", http.StatusBadRequest, "Invalid path"},
		{"missing", "Cambridge IELTS 15/Reading/none.pdf", http.StatusNotFound, "File not found"},
		{"directory", "Cambridge IELTS 15", http.StatusNotFound, "File not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodGet, "/pdfs/x", "")
			req.SetPathValue("path", tt.path)
			rec := httptest.NewRecorder()
			h.ServeFile(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.body {
				t.Errorf("body = %q, want %q", got, tt.body)
			}
		})
	}
}

func TestViewer(t *testing.T) {
	h := NewLibraryHandler(newTestLibrary(t))

	rec := httptest.NewRecorder()
	h.OpenViewer(rec, newRequest(http.MethodGet, "/api/reading/view?path="+strings.ReplaceAll(bookPath, " ", "%20"), ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	v := decodeBody[library.Viewer](t, rec)
	if !v.Visible || v.Source != "/pdfs/"+bookPath || v.Title != "Passage 1.pdf" {
		t.Errorf("viewer = %+v", v)
	}

	rec = httptest.NewRecorder()
	h.OpenViewer(rec, newRequest(http.MethodGet, "/api/reading/view?path=../secret.pdf", ""))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("traversal status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.CloseViewer(rec, newRequest(http.MethodPost, "/api/reading/close", ""))
	v = decodeBody[library.Viewer](t, rec)
	if v.Visible || v.Source != "" {
		t.Errorf("closed viewer = %+v", v)
	}
}
