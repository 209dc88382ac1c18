package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meditrack_pro/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server:      config.ServerConfig{Port: 8080},
		DataSource:  config.DataSourceMemory,
		Cache:       config.CacheConfig{SummaryTTL: time.Hour},
		MercadoPago: config.MercadoPagoConfig{Mock: true},
		Log:         config.LogConfig{Level: "error", Format: "json"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(context.Background(), memoryConfig(), nil)
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouter_UnknownDataSource(t *testing.T) {
	cfg := memoryConfig()
	cfg.DataSource = "postgres"

	_, err := NewRouter(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewRouter_MemoryWiring(t *testing.T) {
	router := newTestRouter(t)

	t.Run("ping", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/v1/ping", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("patients from seed", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/v1/patients", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Greater(t, body.Total, 0)
	})

	t.Run("ai summary without api key falls back", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/v1/dashboard/ai-summary", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"fallback":true`)
	})

	t.Run("csv export", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/v1/records/export?format=csv", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "faturamento_meditrack_")
		assert.Contains(t, w.Body.String(), "AG-8001")
	})

	t.Run("mock charge of outstanding balance", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/v1/records/AG-8001/charges", `{}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var charge struct {
			ID     string  `json:"id"`
			Amount float64 `json:"amount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &charge))
		assert.Equal(t, 1200.0, charge.Amount)

		w = serve(router, http.MethodGet, "/v1/charges/"+charge.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = serve(router, http.MethodPost, "/v1/records/AG-8001/charges", `{}`)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "NOTHING_TO_CHARGE")
	})

	t.Run("patient csv export", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/v1/patients/export?status=all", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "pacientes_meditrack_")
		assert.True(t, strings.HasPrefix(w.Body.String(), "ID,Nome,CPF,Telefone,Convenio,Plano,Status,Ultima Visita\n"))
	})

	t.Run("paid record cannot be charged", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/v1/records/AG-8002/charges", `{}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "meditrack_http_requests_total"))
	})
}
