package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindPayload struct {
	Name string `json:"name" xml:"name"`
	Age  int    `json:"age" xml:"age"`
}

func TestBindJSON(t *testing.T) {
	t.Run("decodes body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","age":30}`))

		var p bindPayload
		require.NoError(t, BindJSON(req, &p))
		assert.Equal(t, bindPayload{Name: "alice", Age: 30}, p)
	})

	t.Run("rejects unknown fields by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","extra":true}`))

		var p bindPayload
		assert.Error(t, BindJSON(req, &p))
	})

	t.Run("allows unknown fields when requested", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","extra":true}`))

		var p bindPayload
		assert.NoError(t, BindJSON(req, &p, true))
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice"}{"name":"bob"}`))

		var p bindPayload
		assert.Error(t, BindJSON(req, &p))
	})
}

func TestBindXML(t *testing.T) {
	t.Run("decodes body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`<bindPayload><name>alice</name><age>30</age></bindPayload>`))

		var p bindPayload
		require.NoError(t, BindXML(req, &p))
		assert.Equal(t, bindPayload{Name: "alice", Age: 30}, p)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`<bindPayload/><bindPayload/>`))

		var p bindPayload
		assert.Error(t, BindXML(req, &p))
	})
}
