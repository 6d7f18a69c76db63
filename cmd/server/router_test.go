package main

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcmoraesmenezes/design-patterns-lab/internal/catalog"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/config"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/patterns/factory"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/service/auth"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/solid/dip"
	"github.com/pcmoraesmenezes/design-patterns-lab/internal/store"
)

const testAdminPassword = "correct horse battery staple"

// newTestApplication wires a full application over a temporary SQLite
// database and a minimal catalog, mirroring initializeApp.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "catalog.yaml")
	catalogYAML := `documents:
  - slug: factory-method
    title: Factory Method
    summary: Create objects through a registry of constructors.
    path: docs/factory-method.md
`
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogYAML), 0o600))

	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
		Gallery: config.GalleryConfig{
			Path: filepath.Join(dir, "gallery.db"),
		},
		Auth: config.AuthConfig{
			JWTSecret:            "thisisasecretkeythatis32charslong!!",
			AdminPasswordHash:    hash,
			TokenLifetimeMinutes: 60,
		},
		Catalog: config.CatalogConfig{Path: catalogPath},
	}

	shapeStore, err := store.Open(cfg.Gallery.Path)
	require.NoError(t, err, "Opening the shape store should succeed")
	t.Cleanup(func() { _ = shapeStore.Close() })

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	docCatalog, err := catalog.Load(cfg.Catalog.Path)
	require.NoError(t, err)

	appLogger := slog.Default()
	shapeFactory := factory.NewShapeFactory(rand.New(rand.NewPCG(1, 2)))

	return &application{
		config:         cfg,
		logger:         appLogger,
		shapeStore:     shapeStore,
		galleryService: service.NewGalleryService(shapeFactory, shapeStore, appLogger),
		notificationService: dip.NewNotificationService(
			appLogger,
			dip.NewEmailSender(appLogger),
			dip.NewSMSSender(appLogger),
		),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		catalog:          docCatalog,
	}
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}

	r := httptest.NewRequest(method, path, reader)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

// TestHealthEndpoint verifies the health check.
func TestHealthEndpoint(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := doJSON(t, router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code, "Health check should return 200")
	assert.Equal(t, "OK", w.Body.String())
}

// TestShapeLifecycle walks the playground loop end to end: create
// shapes, list them, render the canvas, then clear the gallery as
// admin.
func TestShapeLifecycle(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	// Create two shapes.
	w := doJSON(t, router, http.MethodPost, "/api/shapes", `{"kind":"circle","x":100,"y":100}`, "")
	require.Equal(t, http.StatusCreated, w.Code, "Creating a circle should succeed")

	w = doJSON(t, router, http.MethodPost, "/api/shapes", `{"kind":"rectangle","x":300,"y":200}`, "")
	require.Equal(t, http.StatusCreated, w.Code, "Creating a rectangle should succeed")

	// Unknown kinds are rejected before anything is stored.
	w = doJSON(t, router, http.MethodPost, "/api/shapes", `{"kind":"hexagon","x":1,"y":1}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "Unknown kinds should return 400")

	// List reflects insertion order.
	w = doJSON(t, router, http.MethodGet, "/api/shapes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Shapes []struct {
			Kind string `json:"kind"`
		} `json:"shapes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Shapes, 2, "Both shapes should be listed")
	assert.Equal(t, "circle", list.Shapes[0].Kind)
	assert.Equal(t, "rectangle", list.Shapes[1].Kind)

	// The canvas renders both shapes.
	w = doJSON(t, router, http.MethodGet, "/api/canvas", "", "")
	require.Equal(t, http.StatusOK, w.Code, "Canvas should render")
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(w.Body.String(), "<circle"), "The circle should be drawn")
	assert.True(t, strings.Contains(w.Body.String(), "<rect"), "The rectangle should be drawn")

	// Clearing the gallery without a token is rejected.
	w = doJSON(t, router, http.MethodDelete, "/api/shapes", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "Destructive operations require a token")

	// Log in and clear as admin.
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", `{"password":"`+testAdminPassword+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, "Login with the correct password should succeed")
	var authResp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authResp))
	require.NotEmpty(t, authResp.AccessToken)

	w = doJSON(t, router, http.MethodDelete, "/api/shapes", "", authResp.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, "Clearing as admin should succeed")

	w = doJSON(t, router, http.MethodGet, "/api/shapes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Shapes, "The gallery should be empty after clearing")
}

// TestPatternCatalogEndpoints verifies the document catalog routes.
func TestPatternCatalogEndpoints(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := doJSON(t, router, http.MethodGet, "/api/patterns", "", "")
	require.Equal(t, http.StatusOK, w.Code, "Listing patterns should succeed")
	assert.True(t, strings.Contains(w.Body.String(), "factory-method"))

	w = doJSON(t, router, http.MethodGet, "/api/patterns/factory-method", "", "")
	assert.Equal(t, http.StatusOK, w.Code, "Fetching a known slug should succeed")

	w = doJSON(t, router, http.MethodGet, "/api/patterns/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "Fetching an unknown slug should return 404")
}

// TestNotificationEndpoint verifies the notification route.
func TestNotificationEndpoint(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/notifications",
		`{"channel":"email","recipient":"user@example.com","message":"hello"}`, "")
	assert.Equal(t, http.StatusAccepted, w.Code, "A valid notification should be accepted")

	w = doJSON(t, router, http.MethodPost, "/api/notifications",
		`{"channel":"pigeon","recipient":"user@example.com","message":"hello"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "Unknown channels should return 400")
}
