package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/render"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

// GalleryService creates shapes through the factory, persists them,
// and renders the accumulated gallery onto a canvas. It is the
// playground's equivalent of the click-to-spawn loop: every create is
// a click, every canvas render is a frame.
type GalleryService struct {
	shapeFactory *factory.ShapeFactory
	shapeStore   store.ShapeStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewGalleryService creates a GalleryService.
func NewGalleryService(
	shapeFactory *factory.ShapeFactory,
	shapeStore store.ShapeStore,
	logger *slog.Logger,
) *GalleryService {
	if logger == nil {
		logger = slog.Default()
	}

	return &GalleryService{
		shapeFactory: shapeFactory,
		shapeStore:   shapeStore,
		logger:       logger.With(slog.String("component", "gallery_service")),
		now:          time.Now,
	}
}

// Kinds returns the shape kinds the factory can create.
func (s *GalleryService) Kinds() []string {
	return s.shapeFactory.Kinds()
}

// CreateShape builds a shape of the given kind at (x, y) through the
// factory and persists it. Returns factory.ErrUnknownKind for a kind
// with no registered constructor.
func (s *GalleryService) CreateShape(
	ctx context.Context,
	kind string,
	x, y int,
) (*store.ShapeRecord, error) {
	shape, err := s.shapeFactory.Create(factory.ShapeContext{Kind: kind, X: x, Y: y})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(shape)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shape payload: %w", err)
	}

	record := &store.ShapeRecord{
		ID:        uuid.New(),
		Kind:      shape.Kind(),
		X:         x,
		Y:         y,
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}

	if err := s.shapeStore.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist shape: %w", err)
	}

	s.logger.DebugContext(ctx, "shape added to gallery",
		slog.String("shape_id", record.ID.String()),
		slog.String("kind", record.Kind))
	return record, nil
}

// ListShapes returns every gallery record in insertion order.
func (s *GalleryService) ListShapes(ctx context.Context) ([]*store.ShapeRecord, error) {
	return s.shapeStore.List(ctx)
}

// RenderCanvas draws every stored shape onto a fresh canvas and
// returns the SVG document.
func (s *GalleryService) RenderCanvas(ctx context.Context) ([]byte, error) {
	records, err := s.shapeStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery for rendering: %w", err)
	}

	shapes := make([]factory.Shape, 0, len(records))
	for _, record := range records {
		shape, err := decodeShape(record)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}

	return render.Shapes(shapes), nil
}

// DeleteShape removes one shape from the gallery.
// Returns store.ErrShapeNotFound for an unknown ID.
func (s *GalleryService) DeleteShape(ctx context.Context, id uuid.UUID) error {
	if err := s.shapeStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "shape removed from gallery", slog.String("shape_id", id.String()))
	return nil
}

// ClearGallery removes every shape and returns how many were removed.
func (s *GalleryService) ClearGallery(ctx context.Context) (int64, error) {
	removed, err := s.shapeStore.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "gallery cleared", slog.Int64("removed", removed))
	return removed, nil
}

// decodeShape rebuilds the concrete shape from a stored record.
func decodeShape(record *store.ShapeRecord) (factory.Shape, error) {
	var shape factory.Shape
	switch record.Kind {
	case factory.KindCircle:
		shape = &factory.Circle{}
	case factory.KindRectangle:
		shape = &factory.Rectangle{}
	default:
		return nil, fmt.Errorf("%w: stored kind %q", factory.ErrUnknownKind, record.Kind)
	}

	if err := json.Unmarshal(record.Payload, shape); err != nil {
		return nil, fmt.Errorf("%w: shape %s: %v", ErrShapeCorrupted, record.ID, err)
	}
	return shape, nil
}
