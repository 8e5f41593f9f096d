package middlewares_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datefilter/middlewares"
	"github.com/dmitrymomot/datefilter/pkg/locale"
	"github.com/dmitrymomot/datefilter/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("passes through", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("logs panic with locale", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Level: slog.LevelInfo}, &buf, middlewares.LocaleExtractor())

		r := chi.NewRouter()
		r.Use(middlewares.Locale(locale.DefaultRegistry()))
		r.Use(middlewares.Recover(middlewares.WithRecoverLogger(log)))
		r.Get("/", func(http.ResponseWriter, *http.Request) {
			panic("template exploded")
		})

		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "panic recovered", entry["msg"])
		require.Equal(t, "template exploded", entry["panic"])
		require.Equal(t, "fr", entry["locale"])
		require.Equal(t, "/", entry["path"])
		require.NotEmpty(t, entry["stack"])
	})

	t.Run("stack can be disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithConfig(logger.Config{Level: slog.LevelInfo}, &buf)

		h := middlewares.Recover(
			middlewares.WithRecoverLogger(log),
			middlewares.WithRecoverDisablePrintStack(),
		)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(42)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, buf.String(), `"stack"`)
		require.Contains(t, buf.String(), `"panic":42`)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
