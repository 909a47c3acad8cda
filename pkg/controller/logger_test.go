package controller_test

import (
	"net/http"
	"net/http/httptest"
	"registry/pkg/controller"
	"registry/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP_XForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	require.Equal(t, "1.2.3.4", controller.GetClientIP(req))
}

func TestGetClientIP_XRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "9.8.7.6")
	require.Equal(t, "9.8.7.6", controller.GetClientIP(req))
}

func TestGetClientIP_RemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	require.Equal(t, "10.0.0.1", controller.GetClientIP(req))
}

func TestGetClientIP_InvalidRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "not-an-addr"
	require.Equal(t, "not-an-addr", controller.GetClientIP(req), "invalid RemoteAddr is passed through")
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("request provides an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(controller.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		controller.WithLogger(next).ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusCreated, res.StatusCode)
		require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
		require.Equal(t, "abc-123", res.Header.Get(controller.RequestIDHeader))
	})

	t.Run("an id is generated otherwise", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		controller.WithLogger(next).ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusCreated, res.StatusCode)
		require.NotEmpty(t, res.Header.Get("X-Echo-Request-Id"))
		require.Equal(t, res.Header.Get("X-Echo-Request-Id"), res.Header.Get(controller.RequestIDHeader))
	})
}

func TestWithLogger_AccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/perfiles/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	mux.HandleFunc("GET /boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	h := controller.WithLogger(mux)

	req := httptest.NewRequest(http.MethodGet, "/v1/perfiles/7", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/boom", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "GET /v1/perfiles/{id}", ok["route"])
	require.EqualValues(t, 5, ok["bytes"])
	require.EqualValues(t, http.StatusOK, ok["status_code"])
	require.NotEmpty(t, ok["request_id"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
