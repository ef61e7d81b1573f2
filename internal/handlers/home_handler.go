package handlers

import (
	"html/template"
	"net/http"

	"lingolab/internal/navigation"
	"lingolab/internal/quiz"
	"lingolab/internal/visual"
	"lingolab/internal/writing"
)

// HomeHandler renders the single-page site shell
type HomeHandler struct {
	templates *template.Template
	version   string
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(templates *template.Template, version string) *HomeHandler {
	return &HomeHandler{templates: templates, version: version}
}

type homePage struct {
	Version        string
	Tabs           []navigation.Tab
	Active         string
	QuizQuestions  []string
	WritingDisplay string
	Particles      int
	ParticleColor  string
}

// Index renders the site with the section named in ?tab= showing. Unknown
// sections fall back to the first one.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	tabs := navigation.New(navigation.SiteSections...)
	if tab := r.URL.Query().Get("tab"); tab != "" {
		_ = tabs.Activate(tab)
	}

	data := homePage{
		Version:        h.version,
		Tabs:           tabs.Tabs(),
		Active:         tabs.Active(),
		QuizQuestions:  quiz.Questions,
		WritingDisplay: writing.NewCountdown(writing.DefaultSeconds).Display(),
		Particles:      visual.DefaultCount,
		ParticleColor:  visual.Color,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "index.tmpl", data); err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error rendering index template", err)
	}
}

// Navigation returns the tab state for ?tab= as JSON
func (h *HomeHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	tabs := navigation.New(navigation.SiteSections...)
	if tab := r.URL.Query().Get("tab"); tab != "" {
		if err := tabs.Activate(tab); err != nil {
			respondWithError(w, r, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
	}
	writeJSON(w, http.StatusOK, tabs)
}
