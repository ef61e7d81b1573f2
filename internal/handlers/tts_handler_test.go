package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"lingolab/internal/audio"
)

func TestTTSGenerateAndServe(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("ID3-speech"))
	}))
	defer upstream.Close()

	m, reader := newHandlerMetrics(t)
	svc := audio.NewTTSService(t.TempDir()).WithBaseURL(upstream.URL)
	h := NewTTSHandler(svc, m)

	for range 2 {
		rec := do(t, h.Generate, newRequest(http.MethodPost, "/api/tts", `{"text":"good morning"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		res := decodeBody[ttsResponse](t, rec)
		if res.Path != "/tts/"+audio.FileName("good morning") {
			t.Errorf("path = %q", res.Path)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("upstream hit %d times, want 1", calls.Load())
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatal(err)
	}
	byCache := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, mt := range sm.Metrics {
			if mt.Name != "lingolab.tts.requests" {
				continue
			}
			for _, dp := range mt.Data.(metricdata.Sum[int64]).DataPoints {
				v, _ := dp.Attributes.Value("cache")
				byCache[v.AsString()] += dp.Value
			}
		}
	}
	if byCache["hit"] != 1 || byCache["miss"] != 1 {
		t.Errorf("tts requests by cache = %v", byCache)
	}

	req := newRequest(http.MethodGet, "/tts/x", "")
	req.SetPathValue("file", audio.FileName("good morning"))
	rec := do(t, h.ServeFile, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ID3-speech" {
		t.Errorf("serve = %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestTTSErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	h := NewTTSHandler(audio.NewTTSService(t.TempDir()).WithBaseURL(upstream.URL), nil)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"empty", `{"text":"  "}`, http.StatusBadRequest},
		{"too long", `{"text":"` + strings.Repeat("a", 201) + `"}`, http.StatusBadRequest},
		{"upstream down", `{"text":"hello"}`, http.StatusBadGateway},
		{"bad json", `nope`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, h.Generate, newRequest(http.MethodPost, "/api/tts", tt.body)); rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}

	for _, tc := range []struct {
		file   string
		status int
	}{
		{"../secret.mp3", http.StatusBadRequest},
		{"tts_missing.mp3", http.StatusNotFound},
	} {
		req := newRequest(http.MethodGet, "/tts/x", "")
		req.SetPathValue("file", tc.file)
		if rec := do(t, h.ServeFile, req); rec.Code != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.file, rec.Code, tc.status)
		}
	}
}
