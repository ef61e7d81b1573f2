package handlers

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	"lingolab/internal/visual"
)

// VisualHandler generates the background particle field
type VisualHandler struct{}

func NewVisualHandler() *VisualHandler {
	return &VisualHandler{}
}

// Field returns particle positions. ?count= is clamped to the allowed range
// and ?seed= makes the layout repeatable.
func (h *VisualHandler) Field(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count := visual.DefaultCount
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, ErrInvalidCount, "", nil)
			return
		}
		count = n
	}

	seed := rand.Uint64()
	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest, ErrInvalidSeed, "", nil)
			return
		}
		seed = s
	}

	writeJSON(w, http.StatusOK, visual.NewField(count, rand.New(rand.NewPCG(seed, seed))))
}
