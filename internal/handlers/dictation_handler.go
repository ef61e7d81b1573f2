package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"lingolab/internal/dictation"
	"lingolab/internal/service"
)

// DictationHandler exposes the dictation exercise. Every action returns the
// learner's full session so the page can redraw from it.
type DictationHandler struct {
	dictationService *service.DictationService
	libraryService   *service.LibraryService
	uploadMaxSize    int64
}

// NewDictationHandler creates a new dictation handler
func NewDictationHandler(dictationService *service.DictationService, libraryService *service.LibraryService, uploadMaxSize int64) *DictationHandler {
	return &DictationHandler{
		dictationService: dictationService,
		libraryService:   libraryService,
		uploadMaxSize:    uploadMaxSize,
	}
}

type sessionResponse struct {
	*dictation.Session
	WordCount int    `json:"word_count"`
	ActiveTab string `json:"active_tab"`
}

type selectRequest struct {
	Path string `json:"path"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type textRequest struct {
	Text string `json:"text"`
}

type tabRequest struct {
	Tab string `json:"tab"`
}

type compareRequest struct {
	UserText      string `json:"user_text"`
	ReferenceText string `json:"reference_text"`
}

func (h *DictationHandler) respond(w http.ResponseWriter, r *http.Request, sess *dictation.Session, err error) {
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dictation.ErrNoParaphrase) {
			status = http.StatusNotFound
		}
		respondWithError(w, r, status, dictation.Alert(err), "", nil)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Session:   sess,
		WordCount: sess.WordCount(),
		ActiveTab: sess.ActiveTab(),
	})
}

// GetSession returns the learner's session, restoring saved progress on first use
func (h *DictationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	sess, err := h.dictationService.Session(r.Context(), learnerID)
	h.respond(w, r, sess, err)
}

// SelectAudio loads a track from the library into the player
func (h *DictationHandler) SelectAudio(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	var req selectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	file, err := h.libraryService.FindAudio(r.Context(), req.Path)
	if err != nil {
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Error looking up audio", err)
		return
	}
	if file == nil {
		respondWithError(w, r, http.StatusNotFound, ErrUnknownAudio, "", nil)
		return
	}

	sess, err := h.dictationService.SelectAudio(r.Context(), learnerID, *file)
	h.respond(w, r, sess, err)
}

// StartPass begins pass {n}
func (h *DictationHandler) StartPass(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidPass, "", nil)
		return
	}
	sess, err := h.dictationService.StartPass(r.Context(), learnerID, n)
	h.respond(w, r, sess, err)
}

func (h *DictationHandler) Replay(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	sess, err := h.dictationService.Replay(r.Context(), learnerID)
	h.respond(w, r, sess, err)
}

func (h *DictationHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	var req modeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	sess, err := h.dictationService.SetMode(r.Context(), learnerID, dictation.Mode(req.Mode))
	h.respond(w, r, sess, err)
}

// UpdateText records the transcription as the learner types
func (h *DictationHandler) UpdateText(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	sess, err := h.dictationService.UpdateText(r.Context(), learnerID, req.Text)
	h.respond(w, r, sess, err)
}

// LoadTranscript sets the reference transcript from a JSON body or an
// uploaded text file in the "transcript" field.
func (h *DictationHandler) LoadTranscript(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}

	var text string
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)
		file, _, err := r.FormFile("transcript")
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, ErrNoTranscriptFile, "", nil)
			return
		}
		defer file.Close()
		raw, err := io.ReadAll(file)
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, ErrNoTranscriptFile, "Error reading transcript upload", err)
			return
		}
		text = string(raw)
	} else {
		var req textRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
			return
		}
		text = req.Text
	}

	sess, err := h.dictationService.LoadTranscript(r.Context(), learnerID, text)
	h.respond(w, r, sess, err)
}

// GenerateGapFill blanks words of the reference transcript
func (h *DictationHandler) GenerateGapFill(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	sess, err := h.dictationService.GenerateGapFill(r.Context(), learnerID)
	h.respond(w, r, sess, err)
}

// Compare diffs two posted texts. It does not touch the learner's session.
func (h *DictationHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	result, err := h.dictationService.Compare(r.Context(), req.UserText, req.ReferenceText)
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrTranscriptsRequired, "", nil)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CompareSession diffs the session's own transcription and reference
func (h *DictationHandler) CompareSession(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	sess, err := h.dictationService.CompareSession(r.Context(), learnerID)
	h.respond(w, r, sess, err)
}

func (h *DictationHandler) SaveParaphrase(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	sess, err := h.dictationService.SaveParaphrase(r.Context(), learnerID, req.Text)
	h.respond(w, r, sess, err)
}

func (h *DictationHandler) DeleteParaphrase(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidIndex, "", nil)
		return
	}
	sess, err := h.dictationService.DeleteParaphrase(r.Context(), learnerID, index)
	h.respond(w, r, sess, err)
}

// ShowTab switches between the transcription, transcript, comparison and
// paraphrase views
func (h *DictationHandler) ShowTab(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := learnerFrom(w, r)
	if !ok {
		return
	}
	var req tabRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}
	sess, err := h.dictationService.ShowTab(r.Context(), learnerID, req.Tab)
	h.respond(w, r, sess, err)
}
