package tools_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/greyskies/nimbus/internal/tools"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(reg *tools.Registry) http.Handler {
	return tools.NewRouter(slog.Default(), reg, prometheus.NewRegistry())
}

func TestRouter(t *testing.T) {
	t.Run("health check", func(t *testing.T) {
		router := newTestRouter(tools.NewRegistry())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("metrics endpoint is mounted", func(t *testing.T) {
		router := newTestRouter(tools.NewRegistry())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("tool listing", func(t *testing.T) {
		reg := tools.NewRegistry()
		reg.Register("get_weather", http.NotFoundHandler())
		router := newTestRouter(reg)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tools", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":{"tools":["get_weather"]}}`, rec.Body.String())
	})

	t.Run("tool dispatch by path parameter", func(t *testing.T) {
		reg := tools.NewRegistry()
		reg.RegisterFunc("get_weather", func(w http.ResponseWriter, _ *http.Request) {
			tools.WriteData(w, map[string]string{"report": "sunny"})
		})
		router := newTestRouter(reg)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tools/get_weather", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "sunny")
	})

	t.Run("unknown tool answers 404", func(t *testing.T) {
		router := newTestRouter(tools.NewRegistry())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tools/nope", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
