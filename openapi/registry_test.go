package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	t.Run("stores by name", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("User", map[string]any{"type": "object"})

		assert.Equal(t, map[string]any{"type": "object"}, reg.Schemas()["User"])
	})

	t.Run("last registration wins", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("User", map[string]any{"title": "first"})
		reg.Register("User", map[string]any{"title": "second"})

		require.Len(t, reg.Schemas(), 1)
		assert.Equal(t, "second", reg.Schemas()["User"]["title"])
	})
}

func TestRegistryFlatten(t *testing.T) {
	t.Run("hoists nested definitions", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("User", map[string]any{
			"type": "object",
			"definitions": map[string]any{
				"Address": map[string]any{"type": "object"},
			},
		})

		defs := reg.Flatten()
		assert.Equal(t, map[string]any{"type": "object"}, defs["Address"])

		_, ok := reg.Schemas()["User"]["definitions"]
		assert.False(t, ok, "nested definitions removed from parent")
	})

	t.Run("runs once", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("User", map[string]any{
			"definitions": map[string]any{
				"Address": map[string]any{"type": "object"},
			},
		})

		first := reg.Flatten()

		// Registering after the flattening pass does not rerun it.
		reg.Register("Order", map[string]any{
			"definitions": map[string]any{
				"Item": map[string]any{"type": "object"},
			},
		})
		second := reg.Flatten()

		assert.Equal(t, first, second)
		assert.NotContains(t, second, "Item")
	})

	t.Run("no definitions", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("User", map[string]any{"type": "object"})

		assert.Empty(t, reg.Flatten())
	})
}
