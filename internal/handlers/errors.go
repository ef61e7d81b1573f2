package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"lingolab/internal/observe"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondWithError writes {"error": userMsg} with status. When err is set it
// is logged under logMsg, or userMsg if logMsg is empty.
func respondWithError(w http.ResponseWriter, r *http.Request, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		observe.Logger(r.Context()).Log(r.Context(), level, logMsg, "status", status, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithText is the plain-text variant used by the file routes
func respondWithText(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// decodeJSON reads a JSON body of at most maxBody bytes into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	return json.NewDecoder(r.Body).Decode(v)
}
