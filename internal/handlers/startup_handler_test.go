package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStartupStatus(t *testing.T) {
	s := NewStartupStatus(StepDatabase, StepMigrations, StepTemplates, StepLibrary)
	gated := s.RequireReady(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	gated.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audio", nil))
	if rec.Code != http.StatusServiceUnavailable || rec.Header().Get("Retry-After") != "2" {
		t.Fatalf("before ready: %d %q", rec.Code, rec.Header().Get("Retry-After"))
	}

	s.SetCurrentStep(StepDatabase)
	s.CompleteStep(StepDatabase)
	s.CompleteStep(StepMigrations)

	rec = httptest.NewRecorder()
	s.ShowStatus(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	snap := decodeBody[startupSnapshot](t, rec)
	if rec.Code != http.StatusServiceUnavailable || snap.Progress != 50 || snap.Ready {
		t.Errorf("mid-startup = %d %+v", rec.Code, snap)
	}

	s.MarkReady()
	rec = httptest.NewRecorder()
	s.ShowStatus(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	snap = decodeBody[startupSnapshot](t, rec)
	if rec.Code != http.StatusOK || !snap.Ready || snap.Current != StepReady || snap.Progress != 100 {
		t.Errorf("ready = %d %+v", rec.Code, snap)
	}

	rec = httptest.NewRecorder()
	gated.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audio", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("after ready status = %d", rec.Code)
	}
}
