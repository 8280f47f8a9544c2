package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirofs/mirofs/internal/infrastructure/monitoring"
	"github.com/mirofs/mirofs/internal/logging"
	"github.com/mirofs/mirofs/internal/providers/filesystem"
	"github.com/mirofs/mirofs/internal/service"
	"github.com/mirofs/mirofs/internal/vfs"
)

var (
	metricsOnce   sync.Once
	sharedMetrics *monitoring.Metrics
)

// testMetrics returns a process-wide metrics instance; promauto registers
// collectors globally, so tests must share one.
func testMetrics() *monitoring.Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = monitoring.NewMetrics()
	})
	return sharedMetrics
}

func newTestRouter(t *testing.T) (*gin.Engine, *vfs.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := vfs.NewWithConfig(vfs.Config{Owner: "root", Group: "root", DetectMIME: false})
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(filesystem.NewProvider(store)))

	handlers := NewHandlers(registry, store, testMetrics(), logging.NewDefault())

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestRoot(t *testing.T) {
	router, _ := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "mirofs", body["service"])
}

func TestHealth(t *testing.T) {
	router, store := newTestRouter(t)
	require.NoError(t, store.Create("/f.txt", []byte("x"), false))

	w, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])

	storeStats, ok := body["store"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), storeStats["files"])
}

func TestListServices(t *testing.T) {
	router, _ := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	require.Len(t, services, 1)

	first := services[0].(map[string]interface{})
	assert.Equal(t, "filesystem", first["id"])
}

func TestListServicesFiltered(t *testing.T) {
	router, _ := newTestRouter(t)

	_, body := doJSON(t, router, http.MethodGet, "/services?category=system", nil)
	assert.Nil(t, body["services"])
}

func TestDiscoverServices(t *testing.T) {
	router, _ := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/services/discover", map[string]interface{}{
		"intent": "read a file from the filesystem",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, services)
}

func TestDiscoverRequiresIntent(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/services/discover", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router, store := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "filesystem.create",
		"params":  map[string]interface{}{"path": "/hello.txt", "data": "hi"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	content, err := store.ReadFile("/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), content)
}

func TestExecuteServiceFailureResult(t *testing.T) {
	router, _ := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "filesystem.read",
		"params":  map[string]interface{}{"path": "/missing.txt"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "read failed")
}

func TestExecuteServiceUnknownService(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "nosuch.tool",
		"params":  map[string]interface{}{},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExecuteServiceRequiresToolID(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"params": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
