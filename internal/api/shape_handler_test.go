package api

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

// memoryShapeStore is an in-memory ShapeStore for handler tests.
type memoryShapeStore struct {
	records []*store.ShapeRecord
	saveErr error
}

func (s *memoryShapeStore) Save(ctx context.Context, record *store.ShapeRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

func (s *memoryShapeStore) List(ctx context.Context) ([]*store.ShapeRecord, error) {
	out := make([]*store.ShapeRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *memoryShapeStore) Get(ctx context.Context, id uuid.UUID) (*store.ShapeRecord, error) {
	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, store.ErrShapeNotFound
}

func (s *memoryShapeStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return store.ErrShapeNotFound
}

func (s *memoryShapeStore) DeleteAll(ctx context.Context) (int64, error) {
	removed := int64(len(s.records))
	s.records = nil
	return removed, nil
}

// newTestShapeHandler wires a handler over an in-memory store with a
// deterministic random source.
func newTestShapeHandler(t *testing.T) (*ShapeHandler, *memoryShapeStore) {
	t.Helper()

	shapeStore := &memoryShapeStore{}
	shapeFactory := factory.NewShapeFactory(rand.New(rand.NewPCG(1, 2)))
	galleryService := service.NewGalleryService(shapeFactory, shapeStore, slog.Default())
	return NewShapeHandler(galleryService, slog.Default()), shapeStore
}

// postShape sends a create request and returns the recorder.
func postShape(t *testing.T, handler *ShapeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/api/shapes", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Create(w, r)
	return w
}

// TestCreateShape verifies the happy path for both built-in kinds.
func TestCreateShape(t *testing.T) {
	handler, shapeStore := newTestShapeHandler(t)

	for _, kind := range []string{factory.KindCircle, factory.KindRectangle} {
		t.Run(kind, func(t *testing.T) {
			w := postShape(t, handler, fmt.Sprintf(`{"kind":%q,"x":100,"y":200}`, kind))

			require.Equal(t, http.StatusCreated, w.Code, "Valid create should return 201")

			var resp ShapeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Response should be valid JSON")
			assert.Equal(t, kind, resp.Kind, "Response should carry the requested kind")
			assert.Equal(t, 100, resp.X, "Response should carry the requested X")
			assert.Equal(t, 200, resp.Y, "Response should carry the requested Y")
			assert.NotEqual(t, uuid.Nil, resp.ID, "Each shape should get an ID")
			assert.NotEmpty(t, resp.Shape, "Response should carry the factory-built geometry")
		})
	}

	assert.Len(t, shapeStore.records, 2, "Both shapes should be persisted")
}

// TestCreateShapeRejections verifies the request-validation and
// factory-error paths.
func TestCreateShapeRejections(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed JSON", body: `{"kind":`, wantStatus: http.StatusBadRequest},
		{name: "missing kind", body: `{"x":10,"y":10}`, wantStatus: http.StatusBadRequest},
		{name: "unknown kind", body: `{"kind":"triangle","x":10,"y":10}`, wantStatus: http.StatusBadRequest},
		{name: "x out of bounds", body: `{"kind":"circle","x":801,"y":10}`, wantStatus: http.StatusBadRequest},
		{name: "negative y", body: `{"kind":"circle","x":10,"y":-1}`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, shapeStore := newTestShapeHandler(t)

			w := postShape(t, handler, tc.body)

			assert.Equal(t, tc.wantStatus, w.Code, "Request should be rejected")
			assert.Empty(t, shapeStore.records, "Nothing should be persisted")
		})
	}
}

// TestListShapes verifies insertion order and the kinds listing.
func TestListShapes(t *testing.T) {
	handler, _ := newTestShapeHandler(t)

	require.Equal(t, http.StatusCreated, postShape(t, handler, `{"kind":"circle","x":1,"y":2}`).Code)
	require.Equal(t, http.StatusCreated, postShape(t, handler, `{"kind":"rectangle","x":3,"y":4}`).Code)

	r := httptest.NewRequest(http.MethodGet, "/api/shapes", nil)
	w := httptest.NewRecorder()
	handler.List(w, r)

	require.Equal(t, http.StatusOK, w.Code, "List should return 200")

	var resp ShapeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Response should be valid JSON")
	require.Len(t, resp.Shapes, 2, "Both shapes should be listed")
	assert.Equal(t, factory.KindCircle, resp.Shapes[0].Kind, "Shapes should come back in insertion order")
	assert.Equal(t, factory.KindRectangle, resp.Shapes[1].Kind, "Shapes should come back in insertion order")
	assert.Equal(t, []string{factory.KindCircle, factory.KindRectangle}, resp.Kinds,
		"The supported kinds should be listed")
}

// TestCanvas verifies the SVG rendering endpoint, including the empty
// gallery.
func TestCanvas(t *testing.T) {
	handler, _ := newTestShapeHandler(t)

	t.Run("empty gallery", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/canvas", nil)
		w := httptest.NewRecorder()
		handler.Canvas(w, r)

		require.Equal(t, http.StatusOK, w.Code, "An empty gallery should still render")
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.True(t, strings.Contains(w.Body.String(), "<svg"), "Response should be an SVG document")
	})

	t.Run("with shapes", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, postShape(t, handler, `{"kind":"circle","x":50,"y":60}`).Code)

		r := httptest.NewRequest(http.MethodGet, "/api/canvas", nil)
		w := httptest.NewRecorder()
		handler.Canvas(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "<circle"), "The stored circle should be drawn")
	})
}

// deleteShapeRequest builds a DELETE request with the ID bound as a
// chi URL parameter.
func deleteShapeRequest(id string) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, "/api/shapes/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestDeleteShape verifies deletion by ID.
func TestDeleteShape(t *testing.T) {
	handler, shapeStore := newTestShapeHandler(t)
	require.Equal(t, http.StatusCreated, postShape(t, handler, `{"kind":"circle","x":1,"y":2}`).Code)
	id := shapeStore.records[0].ID

	t.Run("existing shape", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, deleteShapeRequest(id.String()))

		assert.Equal(t, http.StatusNoContent, w.Code, "Deleting an existing shape should return 204")
		assert.Empty(t, shapeStore.records, "The shape should be removed")
	})

	t.Run("missing shape", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, deleteShapeRequest(uuid.New().String()))

		assert.Equal(t, http.StatusNotFound, w.Code, "Deleting a missing shape should return 404")
	})

	t.Run("malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, deleteShapeRequest("not-a-uuid"))

		assert.Equal(t, http.StatusBadRequest, w.Code, "A malformed ID should return 400")
	})
}

// TestClearGallery verifies the bulk delete.
func TestClearGallery(t *testing.T) {
	handler, shapeStore := newTestShapeHandler(t)
	require.Equal(t, http.StatusCreated, postShape(t, handler, `{"kind":"circle","x":1,"y":2}`).Code)
	require.Equal(t, http.StatusCreated, postShape(t, handler, `{"kind":"rectangle","x":3,"y":4}`).Code)

	r := httptest.NewRequest(http.MethodDelete, "/api/shapes", nil)
	w := httptest.NewRecorder()
	handler.Clear(w, r)

	require.Equal(t, http.StatusOK, w.Code, "Clear should return 200")

	var resp ClearGalleryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Response should be valid JSON")
	assert.Equal(t, int64(2), resp.Removed, "The removed count should be reported")
	assert.Empty(t, shapeStore.records, "The gallery should be empty")
}
