package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lingolab/internal/security"
)

func newTestMiddleware(t *testing.T, rate int) *Middleware {
	t.Helper()
	limiter := security.NewRateLimiter(rate, time.Minute)
	t.Cleanup(limiter.Close)
	return NewMiddleware(security.NewLearnerTokens("test-secret", time.Hour), limiter)
}

func echoLearner(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(GetLearnerID(r.Context())))
}

func TestIdentifyLearnerIssuesCookie(t *testing.T) {
	mw := newTestMiddleware(t, 10)
	h := mw.IdentifyLearner(http.HandlerFunc(echoLearner))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Body.String()
	if id == "" {
		t.Fatal("expected a learner id in the context")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != security.LearnerCookie || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}

	// a returning learner keeps the same id and gets no new cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Body.String() != id {
		t.Errorf("returning learner = %q, want %q", rec.Body.String(), id)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("valid cookie should not be reissued")
	}
}

func TestIdentifyLearnerReplacesBadCookie(t *testing.T) {
	mw := newTestMiddleware(t, 10)
	h := mw.IdentifyLearner(http.HandlerFunc(echoLearner))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: security.LearnerCookie, Value: "forged"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Body.String() == "" || len(rec.Result().Cookies()) != 1 {
		t.Errorf("forged cookie should be replaced, got body %q cookies %v", rec.Body.String(), rec.Result().Cookies())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	mw := newTestMiddleware(t, 2)
	h := mw.RateLimit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for i, want := range []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/api/tts", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i+1, rec.Code, want)
		}
		if want == http.StatusTooManyRequests {
			if e := decodeBody[errorResponse](t, rec); e.Error != ErrTooManyRequests {
				t.Errorf("error = %q", e.Error)
			}
			if rec.Header().Get("Retry-After") == "" {
				t.Error("missing Retry-After")
			}
		}
	}
}
