package main

import (
	"net/http"

	"lingolab/internal/handlers"
	"lingolab/internal/observe"
)

// routes collects everything the router wires together
type routes struct {
	status     *handlers.StartupStatus
	middleware *handlers.Middleware
	metrics    *observe.Metrics
	metricsH   http.Handler
	staticDir  string

	home      *handlers.HomeHandler
	library   *handlers.LibraryHandler
	dictation *handlers.DictationHandler
	listening *handlers.ListeningHandler
	quiz      *handlers.QuizHandler
	writing   *handlers.WritingHandler
	speaking  *handlers.SpeakingHandler
	keywords  *handlers.KeywordsHandler
	tts       *handlers.TTSHandler
	visual    *handlers.VisualHandler
}

// newRouter builds the site. Everything except the status, metrics and
// static routes waits for startup to finish and runs with a learner identity.
func newRouter(rt routes) http.Handler {
	app := http.NewServeMux()
	mw := rt.middleware

	app.HandleFunc("GET /", rt.home.Index)
	app.HandleFunc("GET /api/navigation", rt.home.Navigation)

	// Reading and library files
	app.HandleFunc("GET /api/materials", rt.library.ListMaterials)
	app.HandleFunc("GET /api/audio", rt.library.ListAudio)
	app.HandleFunc("GET /api/audio/groups", rt.library.ListAudioGroups)
	app.HandleFunc("POST /api/library/refresh", rt.library.Refresh)
	app.HandleFunc("GET /api/reading/view", rt.library.OpenViewer)
	app.HandleFunc("POST /api/reading/close", rt.library.CloseViewer)
	app.HandleFunc("GET /pdfs/{path...}", rt.library.ServeFile)
	app.HandleFunc("GET /audio/{path...}", rt.library.ServeFile)

	// Dictation
	app.HandleFunc("GET /api/dictation/session", rt.dictation.GetSession)
	app.HandleFunc("POST /api/dictation/select", rt.dictation.SelectAudio)
	app.HandleFunc("POST /api/dictation/pass/{n}", rt.dictation.StartPass)
	app.HandleFunc("POST /api/dictation/replay", rt.dictation.Replay)
	app.HandleFunc("POST /api/dictation/mode", rt.dictation.SetMode)
	app.HandleFunc("POST /api/dictation/text", rt.dictation.UpdateText)
	app.HandleFunc("POST /api/dictation/transcript", rt.dictation.LoadTranscript)
	app.HandleFunc("POST /api/dictation/gapfill/generate", rt.dictation.GenerateGapFill)
	app.Handle("POST /api/dictation/compare", mw.RateLimit(rt.dictation.Compare))
	app.Handle("POST /api/dictation/session/compare", mw.RateLimit(rt.dictation.CompareSession))
	app.HandleFunc("POST /api/dictation/paraphrases", rt.dictation.SaveParaphrase)
	app.HandleFunc("DELETE /api/dictation/paraphrases/{index}", rt.dictation.DeleteParaphrase)
	app.HandleFunc("POST /api/dictation/tab", rt.dictation.ShowTab)

	// Listening
	app.HandleFunc("GET /api/listening/questions", rt.listening.Questions)
	app.HandleFunc("GET /api/listening/sheet", rt.listening.Sheet)
	app.HandleFunc("POST /api/listening/grade", rt.listening.Grade)

	app.HandleFunc("POST /api/quiz/submit", rt.quiz.Submit)

	// Writing
	app.HandleFunc("POST /api/writing/count", rt.writing.Count)
	app.HandleFunc("GET /api/writing/timer", rt.writing.TimerStatus)
	app.HandleFunc("POST /api/writing/timer/start", rt.writing.StartTimer)
	app.HandleFunc("POST /api/writing/timer/reset", rt.writing.ResetTimer)
	app.Handle("POST /api/writing/submit", mw.RateLimit(rt.writing.Submit))

	// Speaking
	app.HandleFunc("GET /api/speaking/recorder", rt.speaking.Recorder)
	app.HandleFunc("POST /api/speaking/record", rt.speaking.Record)
	app.HandleFunc("POST /api/speaking/stop", rt.speaking.Stop)
	app.Handle("POST /api/evaluate/speaking", mw.RateLimit(rt.speaking.Evaluate))

	// Keywords
	app.HandleFunc("POST /api/keywords/extract", rt.keywords.Extract)
	app.HandleFunc("POST /api/keywords/analyze", rt.keywords.Analyze)
	app.HandleFunc("POST /api/keywords/matches", rt.keywords.Matches)
	app.HandleFunc("GET /api/keywords/synonyms/{word}", rt.keywords.Synonyms)

	// Text to speech
	app.Handle("POST /api/tts", mw.RateLimit(rt.tts.Generate))
	app.HandleFunc("GET /tts/{file}", rt.tts.ServeFile)

	app.HandleFunc("GET /api/visual/field", rt.visual.Field)

	root := http.NewServeMux()
	root.HandleFunc("GET /status", rt.status.ShowStatus)
	if rt.metricsH != nil {
		root.Handle("GET /metrics", rt.metricsH)
	}
	root.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(rt.staticDir))))
	root.Handle("/", mw.IdentifyLearner(rt.status.RequireReady(app)))

	return observe.Middleware(rt.metrics)(root)
}
