package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/handlers"
	"github.com/jroosing/hydrasig/internal/config"
	"github.com/jroosing/hydrasig/internal/database"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// exampleRDataHex is an A-covering SIG signed by example.com. with
// signature 01 02 03, expiring 2004-01-01 and incepted 2003-12-01.
const exampleRDataHex = "00010502" + "00000e10" + "3ff36300" + "3fca8480" + "3039" +
	"076578616d706c6503636f6d00" + "010203"

const exampleText = "A 5 2 3600 20040101000000 20031201000000 12345 example.com. AQID"

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.POST("/sig/decode", h.DecodeSIG)
	api.POST("/sig/encode", h.EncodeSIG)
	api.GET("/records", h.ListRecords)
	api.POST("/records", h.CreateRecord)
	api.GET("/records/:id", h.GetRecord)
	api.DELETE("/records/:id", h.DeleteRecord)
	api.GET("/zones", h.ListZones)
	api.GET("/zones/:name", h.GetZone)

	return r
}

func createTestHandler(t *testing.T) *handlers.Handler {
	t.Helper()
	return handlers.New(config.Default(), nil, nil)
}

// createStoreHandler returns a handler backed by a fresh database.
func createStoreHandler(t *testing.T) *handlers.Handler {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "sig.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return handlers.New(config.Default(), db, nil)
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return buf.String()
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
