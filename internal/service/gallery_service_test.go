package service

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

// fakeShapeStore is an in-memory ShapeStore for service tests.
type fakeShapeStore struct {
	records []*store.ShapeRecord
	saveErr error
}

func (f *fakeShapeStore) Save(ctx context.Context, record *store.ShapeRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if err := record.Validate(); err != nil {
		return err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeShapeStore) List(ctx context.Context) ([]*store.ShapeRecord, error) {
	out := make([]*store.ShapeRecord, len(f.records))
	copy(out, f.records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeShapeStore) Get(ctx context.Context, id uuid.UUID) (*store.ShapeRecord, error) {
	for _, record := range f.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, store.ErrShapeNotFound
}

func (f *fakeShapeStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, record := range f.records {
		if record.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return store.ErrShapeNotFound
}

func (f *fakeShapeStore) DeleteAll(ctx context.Context) (int64, error) {
	removed := int64(len(f.records))
	f.records = nil
	return removed, nil
}

// newTestService wires a service with a deterministic factory and a
// fake store.
func newTestService(fake *fakeShapeStore) *GalleryService {
	shapeFactory := factory.NewShapeFactory(rand.New(rand.NewPCG(1, 2)))
	return NewGalleryService(shapeFactory, fake, nil)
}

// TestCreateShapePersistsDecodablePayload verifies that a created
// shape is stored with a payload that decodes back into the shape.
func TestCreateShapePersistsDecodablePayload(t *testing.T) {
	fake := &fakeShapeStore{}
	service := newTestService(fake)

	record, err := service.CreateShape(context.Background(), factory.KindCircle, 120, 240)

	require.NoError(t, err, "Creating a circle should succeed")
	require.NotNil(t, record, "A record should be returned")
	assert.Equal(t, factory.KindCircle, record.Kind, "Record should carry the kind")
	assert.Equal(t, 120, record.X, "Record should carry the position")
	assert.Equal(t, 240, record.Y, "Record should carry the position")
	assert.NotEqual(t, uuid.Nil, record.ID, "Record should carry a generated ID")
	require.Len(t, fake.records, 1, "The record should be persisted")

	var circle factory.Circle
	require.NoError(t, json.Unmarshal(record.Payload, &circle),
		"Payload should decode into a circle")
	assert.Equal(t, 120, circle.X, "Decoded circle should keep its position")
	assert.GreaterOrEqual(t, circle.Radius, factory.MinRadius, "Radius should be within bounds")
	assert.LessOrEqual(t, circle.Radius, factory.MaxRadius, "Radius should be within bounds")
}

// TestCreateShapeUnknownKind verifies that the factory error surfaces
// unchanged so the handler can map it to a client error.
func TestCreateShapeUnknownKind(t *testing.T) {
	fake := &fakeShapeStore{}
	service := newTestService(fake)

	record, err := service.CreateShape(context.Background(), "hexagon", 0, 0)

	require.Error(t, err, "Creating an unknown kind should fail")
	assert.ErrorIs(t, err, factory.ErrUnknownKind, "Error should wrap factory.ErrUnknownKind")
	assert.Nil(t, record, "No record should be returned on error")
	assert.Empty(t, fake.records, "Nothing should be persisted on error")
}

// TestRenderCanvasDrawsStoredShapes verifies that the rendered SVG
// contains an element per stored shape.
func TestRenderCanvasDrawsStoredShapes(t *testing.T) {
	fake := &fakeShapeStore{}
	service := newTestService(fake)
	ctx := context.Background()

	_, err := service.CreateShape(ctx, factory.KindCircle, 100, 100)
	require.NoError(t, err, "Creating a circle should succeed")
	_, err = service.CreateShape(ctx, factory.KindRectangle, 300, 200)
	require.NoError(t, err, "Creating a rectangle should succeed")

	doc, err := service.RenderCanvas(ctx)

	require.NoError(t, err, "Rendering the canvas should succeed")
	svg := string(doc)
	assert.Contains(t, svg, `cx="100"`, "Canvas should contain the circle")
	assert.Contains(t, svg, `<rect x="300"`, "Canvas should contain the rectangle")
}

// TestRenderCanvasEmptyGallery verifies the empty-gallery case.
func TestRenderCanvasEmptyGallery(t *testing.T) {
	service := newTestService(&fakeShapeStore{})

	doc, err := service.RenderCanvas(context.Background())

	require.NoError(t, err, "Rendering an empty gallery should succeed")
	assert.True(t, strings.HasPrefix(string(doc), "<svg"), "An empty gallery should still be a valid SVG")
	assert.NotContains(t, string(doc), "<circle", "No shapes should be drawn")
}

// TestRenderCanvasCorruptedPayload verifies the error for undecodable
// stored payloads.
func TestRenderCanvasCorruptedPayload(t *testing.T) {
	fake := &fakeShapeStore{records: []*store.ShapeRecord{{
		ID:      uuid.New(),
		Kind:    factory.KindCircle,
		Payload: json.RawMessage(`{invalid`),
	}}}
	service := newTestService(fake)

	doc, err := service.RenderCanvas(context.Background())

	require.Error(t, err, "A corrupted payload should fail the render")
	assert.ErrorIs(t, err, ErrShapeCorrupted, "Error should wrap ErrShapeCorrupted")
	assert.Nil(t, doc, "No document should be returned on error")
}

// TestDeleteShape verifies the delete passthrough and error mapping.
func TestDeleteShape(t *testing.T) {
	fake := &fakeShapeStore{}
	service := newTestService(fake)
	ctx := context.Background()

	record, err := service.CreateShape(ctx, factory.KindRectangle, 1, 1)
	require.NoError(t, err, "Creating a rectangle should succeed")

	require.NoError(t, service.DeleteShape(ctx, record.ID), "Deleting an existing shape should succeed")
	assert.Empty(t, fake.records, "The record should be removed")

	err = service.DeleteShape(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrShapeNotFound, "Deleting a missing shape should fail")
}

// TestClearGallery verifies the bulk delete.
func TestClearGallery(t *testing.T) {
	fake := &fakeShapeStore{}
	service := newTestService(fake)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := service.CreateShape(ctx, factory.KindCircle, i, i)
		require.NoError(t, err, "Creating a circle should succeed")
	}

	removed, err := service.ClearGallery(ctx)

	require.NoError(t, err, "Clearing the gallery should succeed")
	assert.Equal(t, int64(4), removed, "Every shape should be removed")
	assert.Empty(t, fake.records, "The gallery should be empty")
}

// TestKinds verifies the kind listing passthrough.
func TestKinds(t *testing.T) {
	service := newTestService(&fakeShapeStore{})

	assert.Equal(t, []string{factory.KindCircle, factory.KindRectangle}, service.Kinds(),
		"Kinds should list the factory's registered kinds")
}
