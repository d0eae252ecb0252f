package muxhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulemux/rulemux/mux"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":  {Data: []byte("<html>home</html>")},
		"css/app.css": {Data: []byte("body {}")},
		"docs/README": {Data: []byte("readme")},
	}
}

func TestStaticFilesHandler(t *testing.T) {
	t.Run("nil fs", func(t *testing.T) {
		_, err := StaticFilesHandler(StaticFilesConfig{})
		assert.ErrorIs(t, err, ErrStaticFilesNoFS)
	})

	t.Run("serves files", func(t *testing.T) {
		h, err := StaticFilesHandler(StaticFilesConfig{FS: testFS()})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/app.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body {}", rec.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		h, err := StaticFilesHandler(StaticFilesConfig{FS: testFS()})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.txt", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("directory listing disabled by default", func(t *testing.T) {
		h, err := StaticFilesHandler(StaticFilesConfig{FS: testFS()})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("directory with index is still served", func(t *testing.T) {
		h, err := StaticFilesHandler(StaticFilesConfig{FS: testFS()})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<html>home</html>", rec.Body.String())
	})

	t.Run("directory listing enabled", func(t *testing.T) {
		h, err := StaticFilesHandler(StaticFilesConfig{FS: testFS(), EnableDirectoryListing: true})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "README")
	})

	t.Run("spa fallback", func(t *testing.T) {
		h, err := StaticFilesHandler(StaticFilesConfig{FS: testFS(), SPAFallback: true})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some/client/route", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<html>home</html>", rec.Body.String())
	})

	t.Run("spa fallback requires index", func(t *testing.T) {
		_, err := StaticFilesHandler(StaticFilesConfig{
			FS:          fstest.MapFS{"app.js": {Data: []byte("{}")}},
			SPAFallback: true,
		})
		assert.ErrorIs(t, err, ErrStaticFilesNoIndexHTML)
	})
}

func TestMountStaticFiles(t *testing.T) {
	t.Run("strips the prefix", func(t *testing.T) {
		r := mux.NewRouter()
		require.NoError(t, MountStaticFiles(r, "/static", StaticFilesConfig{FS: testFS()}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body {}", rec.Body.String())
	})

	t.Run("other routes untouched", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/api/users", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		require.NoError(t, MountStaticFiles(r, "/static/", StaticFilesConfig{FS: testFS()}))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/docs/README", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("config errors propagate", func(t *testing.T) {
		r := mux.NewRouter()
		err := MountStaticFiles(r, "/static", StaticFilesConfig{})
		assert.ErrorIs(t, err, ErrStaticFilesNoFS)
	})
}
