package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomakv/storetune/internal/conf"
)

func newTestServer(t *testing.T) *HttpServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &conf.Config{
		Container: conf.Container{
			TaskCount:           2,
			MaxManifestFileSize: conf.DefaultMaxManifestFileSize,
		},
		Stores: map[string]conf.Store{
			"orders": {
				Path:   t.TempDir(),
				Config: map[string]string{"compression": "lz4"},
			},
		},
	}
	return NewHttpServer(NewServer(cfg))
}

func TestListStores(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stores", nil)
	h.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"orders"}, body["stores"])
}

func TestStoreOptions(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stores/orders/options", nil)
	h.Engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["CreateIfMissing"])
	assert.Equal(t, float64(16*1024*1024), body["WriteBufferSize"])
}

func TestStoreOptionsUnknown(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stores/nope/options", nil)
	h.Engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
