package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterServeHTTP(t *testing.T) {
	t.Run("dispatches matched handler", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users/<int:id>", func(w http.ResponseWriter, r *http.Request) {
			vars := Vars(r)
			w.Write([]byte("user " + vars["id"]))
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user 42", rec.Body.String())
	})

	t.Run("404 when no route matches", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("405 with Allow header on method mismatch", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {}).
			Methods(http.MethodGet, http.MethodPost)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	})

	t.Run("custom not found handler", func(t *testing.T) {
		router := NewRouter()
		router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("path is cleaned by default", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users/all", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/../users/./all", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("skip clean preserves dot segments", func(t *testing.T) {
		router := NewRouter().SkipClean(true)
		router.HandleFunc("/users/all", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/./all", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouterStrictSlash(t *testing.T) {
	t.Run("redirects to canonical form", func(t *testing.T) {
		router := NewRouter().StrictSlash(true)
		router.HandleFunc("/users/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", nil))

		assert.Equal(t, http.StatusPermanentRedirect, rec.Code)
		assert.Equal(t, "/users/", rec.Header().Get("Location"))
	})

	t.Run("serves canonical form directly", func(t *testing.T) {
		router := NewRouter().StrictSlash(true)
		router.HandleFunc("/users/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouterMiddleware(t *testing.T) {
	t.Run("wraps matched handlers in order", func(t *testing.T) {
		router := NewRouter()
		var order []string

		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "first")
				next.ServeHTTP(w, r)
			})
		})
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "second")
				next.ServeHTTP(w, r)
			})
		})
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {
			order = append(order, "handler")
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("not applied on 404", func(t *testing.T) {
		router := NewRouter()
		var called bool

		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				next.ServeHTTP(w, r)
			})
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.False(t, called)
	})

	t.Run("cors method middleware", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {}).
			Methods(http.MethodGet, http.MethodPost)
		router.Use(CORSMethodMiddleware(router))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, "GET,POST", rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("cors header aggregates methods across routes", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {}).
			Methods(http.MethodDelete)
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {}).
			Methods(http.MethodGet, http.MethodPost)
		router.Use(CORSMethodMiddleware(router))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, "DELETE,GET,POST", rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("cors header absent without declared methods", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/users", func(_ http.ResponseWriter, _ *http.Request) {})
		router.Use(CORSMethodMiddleware(router))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

		_, present := rec.Header()["Access-Control-Allow-Methods"]
		assert.False(t, present)
	})
}

func TestRouterWalk(t *testing.T) {
	t.Run("visits every route", func(t *testing.T) {
		router := NewRouter()
		router.HandleFunc("/a", func(_ http.ResponseWriter, _ *http.Request) {})
		router.HandleFunc("/b/<id>", func(_ http.ResponseWriter, _ *http.Request) {})
		api := router.PathPrefix("/api").Subrouter()
		api.HandleFunc("/c", func(_ http.ResponseWriter, _ *http.Request) {})

		var templates []string
		err := router.Walk(func(route *Route, _ *Router, _ []*Route) error {
			tpl, err := route.GetPathTemplate()
			require.NoError(t, err)
			templates = append(templates, tpl)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/b/<id>", "/api", "/api/c"}, templates)
	})

	t.Run("skip router stops descent", func(t *testing.T) {
		router := NewRouter()
		api := router.PathPrefix("/api").Subrouter()
		api.HandleFunc("/c", func(_ http.ResponseWriter, _ *http.Request) {})

		var count int
		err := router.Walk(func(route *Route, _ *Router, _ []*Route) error {
			count++
			return SkipRouter
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("ancestors include prefix routes", func(t *testing.T) {
		router := NewRouter()
		api := router.PathPrefix("/api").Subrouter()
		api.HandleFunc("/c", func(_ http.ResponseWriter, _ *http.Request) {})

		err := router.Walk(func(route *Route, _ *Router, ancestors []*Route) error {
			tpl, _ := route.GetPathTemplate()
			if tpl == "/api/c" {
				require.Len(t, ancestors, 1)
			}
			return nil
		})
		require.NoError(t, err)
	})
}
