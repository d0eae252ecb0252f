package muxhandlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rulemux/rulemux/mux"
)

var (
	uuidV4Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	uuidV7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

func requestIDRouter(cfg RequestIDConfig, capture *string) *mux.Router {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	r := mux.NewRouter()
	r.HandleFunc("/test", func(_ http.ResponseWriter, req *http.Request) {
		*capture = req.Header.Get(headerName)
	}).Methods(http.MethodGet)
	r.Use(RequestIDMiddleware(cfg))
	return r
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates uuid v4 by default", func(t *testing.T) {
		var seen string
		r := requestIDRouter(RequestIDConfig{}, &seen)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Regexp(t, uuidV4Regex, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, rec.Header().Get("X-Request-ID"), seen)
	})

	t.Run("does not trust incoming by default", func(t *testing.T) {
		var seen string
		r := requestIDRouter(RequestIDConfig{}, &seen)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "existing-id")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.NotEqual(t, "existing-id", seen)
		assert.Regexp(t, uuidV4Regex, seen)
	})

	t.Run("trusts incoming when configured", func(t *testing.T) {
		var seen string
		r := requestIDRouter(RequestIDConfig{TrustIncoming: true}, &seen)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "existing-id")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "existing-id", seen)
		assert.Equal(t, "existing-id", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom header name", func(t *testing.T) {
		var seen string
		r := requestIDRouter(RequestIDConfig{
			HeaderName:   "X-Trace-ID",
			GenerateFunc: func(_ *http.Request) string { return "trace-123" },
		}, &seen)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, "trace-123", seen)
		assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
	})

	t.Run("each request gets a unique id", func(t *testing.T) {
		var seen string
		r := requestIDRouter(RequestIDConfig{}, &seen)

		rec1 := httptest.NewRecorder()
		r.ServeHTTP(rec1, httptest.NewRequest(http.MethodGet, "/test", nil))
		rec2 := httptest.NewRecorder()
		r.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/test", nil))

		id1 := rec1.Header().Get("X-Request-ID")
		id2 := rec2.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id1)
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty id sets nothing", func(t *testing.T) {
		var seen string
		r := requestIDRouter(RequestIDConfig{
			GenerateFunc: func(_ *http.Request) string { return "" },
		}, &seen)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Empty(t, seen)
		assert.Empty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("id available via context", func(t *testing.T) {
		var fromCtx string

		r := mux.NewRouter()
		r.HandleFunc("/test", func(_ http.ResponseWriter, req *http.Request) {
			fromCtx = RequestIDFromContext(req.Context())
		}).Methods(http.MethodGet)
		r.Use(RequestIDMiddleware(RequestIDConfig{}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.NotEmpty(t, fromCtx)
		assert.Equal(t, rec.Header().Get("X-Request-ID"), fromCtx)
	})
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestGenerateUUIDv7(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		assert.Regexp(t, uuidV7Regex, GenerateUUIDv7(nil))
	})

	t.Run("time ordered", func(t *testing.T) {
		id1 := GenerateUUIDv7(nil)
		time.Sleep(2 * time.Millisecond)
		id2 := GenerateUUIDv7(nil)

		assert.Less(t, id1, id2)
	})
}
