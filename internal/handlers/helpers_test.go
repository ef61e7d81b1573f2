package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lingolab/internal/service"
)

const testLearner = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

// newRequest builds a request carrying testLearner in its context
func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(context.WithValue(req.Context(), LearnerContextKey, testLearner))
}

func writeLibrary(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

const (
	trackPath = "Cambridge IELTS 15/Audio/IELTS 15 Test 1 Section 2.mp3"
	bookPath  = "Cambridge IELTS 15/Reading/Passage 1.pdf"
	toeflPath = "TOEFL/Practice Set.pdf"
)

func newTestLibrary(t *testing.T) *service.LibraryService {
	t.Helper()
	return service.NewLibraryService(writeLibrary(t, trackPath, bookPath, toeflPath), time.Minute)
}

// newUpload builds a multipart request carrying testLearner
func newUpload(target string, body *bytes.Buffer, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	return req.WithContext(context.WithValue(req.Context(), LearnerContextKey, testLearner))
}
