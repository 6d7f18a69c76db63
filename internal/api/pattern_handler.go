package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/api/shared"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/catalog"
)

// PatternHandler serves the pattern document catalog.
type PatternHandler struct {
	catalog *catalog.Catalog
}

// NewPatternHandler creates a new PatternHandler.
func NewPatternHandler(c *catalog.Catalog) *PatternHandler {
	return &PatternHandler{catalog: c}
}

// List handles GET /api/patterns.
func (h *PatternHandler) List(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.Documents())
}

// Get handles GET /api/patterns/{slug}.
func (h *PatternHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.catalog.Get(chi.URLParam(r, "slug"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}
