package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/api/shared"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/platform/logger"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service"
)

// ShapeHandler serves the shape gallery endpoints: creating shapes
// through the factory, listing them, rendering the canvas, and the
// admin-only delete operations.
type ShapeHandler struct {
	galleryService *service.GalleryService
	validate       *validator.Validate
	logger         *slog.Logger
}

// NewShapeHandler creates a new ShapeHandler with the given dependencies.
func NewShapeHandler(galleryService *service.GalleryService, baseLogger *slog.Logger) *ShapeHandler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return &ShapeHandler{
		galleryService: galleryService,
		validate:       validator.New(),
		logger:         baseLogger.With(slog.String("component", "shape_handler")),
	}
}

// Create handles POST /api/shapes. The factory picks the shape's size
// and color; the client only chooses the kind and position.
func (h *ShapeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req CreateShapeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid shape request", err)
		return
	}

	record, err := h.galleryService.CreateShape(ctx, req.Kind, req.X, req.Y)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.InfoContext(ctx, "shape created",
		slog.String("shape_id", record.ID.String()),
		slog.String("kind", record.Kind))
	shared.RespondWithJSON(w, r, http.StatusCreated, newShapeResponse(record))
}

// List handles GET /api/shapes. Shapes come back in insertion order,
// together with the kinds the factory currently supports.
func (h *ShapeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.galleryService.ListShapes(ctx)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list shapes")
		return
	}

	shapes := make([]ShapeResponse, 0, len(records))
	for _, record := range records {
		shapes = append(shapes, newShapeResponse(record))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ShapeListResponse{
		Shapes: shapes,
		Kinds:  h.galleryService.Kinds(),
	})
}

// Canvas handles GET /api/canvas. It renders every stored shape onto a
// fresh canvas and returns the SVG document.
func (h *ShapeHandler) Canvas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	svg, err := h.galleryService.RenderCanvas(ctx)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to render canvas")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		logger.FromContextOrDefault(ctx, h.logger).ErrorContext(ctx,
			"failed to write canvas response", slog.String("error", err.Error()))
	}
}

// Delete handles DELETE /api/shapes/{id}. Admin only.
func (h *ShapeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid shape ID", err)
		return
	}

	if err := h.galleryService.DeleteShape(ctx, id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/shapes. Admin only. Removes every shape
// and reports how many were deleted.
func (h *ShapeHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed, err := h.galleryService.ClearGallery(ctx)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to clear gallery")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ClearGalleryResponse{Removed: removed})
}
