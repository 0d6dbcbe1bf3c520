package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItems(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		got, err := decodeItems([]byte(`{"items":[{"item":"chai","quantity":2},{"item":"samosa","quantity":1}]}`), testCatalog)
		require.NoError(t, err)
		assert.Equal(t, []Item{{Item: "chai", Quantity: 2}, {Item: "samosa", Quantity: 1}}, got)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		got, err := decodeItems([]byte(`{"items":[]}`), testCatalog)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing items field", func(t *testing.T) {
		t.Parallel()
		_, err := decodeItems([]byte(`{"result":"ok"}`), testCatalog)
		assert.ErrorIs(t, err, errUpstreamMalformed)
	})

	t.Run("items not a list", func(t *testing.T) {
		t.Parallel()
		_, err := decodeItems([]byte(`{"items":{"item":"chai","quantity":2}}`), testCatalog)
		assert.ErrorIs(t, err, errUpstreamMalformed)
	})

	t.Run("not json at all", func(t *testing.T) {
		t.Parallel()
		_, err := decodeItems([]byte(`chai chai chai`), testCatalog)
		assert.ErrorIs(t, err, errUpstreamMalformed)
	})

	t.Run("broken element dropped, rest kept", func(t *testing.T) {
		t.Parallel()
		raw := `{"items":[{"item":"chai","quantity":"two"},{"item":"chips","quantity":3}]}`
		got, err := decodeItems([]byte(raw), testCatalog)
		require.NoError(t, err)
		assert.Equal(t, []Item{{Item: "chips", Quantity: 3}}, got)
	})

	t.Run("non-positive quantities dropped", func(t *testing.T) {
		t.Parallel()
		raw := `{"items":[{"item":"chai","quantity":0},{"item":"chips","quantity":-1},{"item":"samosa","quantity":0.4},{"item":"choti","quantity":2}]}`
		got, err := decodeItems([]byte(raw), testCatalog)
		require.NoError(t, err)
		assert.Equal(t, []Item{{Item: "choti", Quantity: 2}}, got)
	})

	t.Run("unlisted and empty item names dropped", func(t *testing.T) {
		t.Parallel()
		raw := `{"items":[{"item":"pizza","quantity":2},{"item":"","quantity":1},{"item":"chai","quantity":1}]}`
		got, err := decodeItems([]byte(raw), testCatalog)
		require.NoError(t, err)
		assert.Equal(t, []Item{{Item: "chai", Quantity: 1}}, got)
	})

	t.Run("no synonym expansion on model output", func(t *testing.T) {
		t.Parallel()
		// The model is told to answer in exact menu names; "tea" is not one.
		got, err := decodeItems([]byte(`{"items":[{"item":"tea","quantity":2}]}`), testCatalog)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("duplicates keep first", func(t *testing.T) {
		t.Parallel()
		raw := `{"items":[{"item":"chai","quantity":2},{"item":"chai","quantity":5}]}`
		got, err := decodeItems([]byte(raw), testCatalog)
		require.NoError(t, err)
		assert.Equal(t, []Item{{Item: "chai", Quantity: 2}}, got)
	})
}
