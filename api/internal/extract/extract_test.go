package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	out   string
	err   error
	sleep time.Duration
	calls int
}

func (f *fakeModel) Name() string     { return "fake" }
func (f *fakeModel) GetModel() string { return "fake-1" }

func (f *fakeModel) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.sleep > 0 {
		select {
		case <-time.After(f.sleep):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.out, f.err
}

func TestParseScannerWins(t *testing.T) {
	t.Parallel()

	m := &fakeModel{out: `{"items":[{"item":"samosa","quantity":9}]}`}
	e := New(Config{}, m)

	got, err := e.Parse(context.Background(), "2 chai", testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Item: "chai", Quantity: 2}}, got)
	assert.Equal(t, 0, m.calls, "model must not be called when the scanner finds items")
}

func TestParseModelPath(t *testing.T) {
	t.Parallel()

	m := &fakeModel{out: `{"items":[{"item":"chai","quantity":2}]}`}
	e := New(Config{}, m)

	got, err := e.Parse(context.Background(), "ek aur round please, you know the usual", testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Item: "chai", Quantity: 2}}, got)
	assert.Equal(t, 1, m.calls)
}

func TestParseModelOutputWrappedInProse(t *testing.T) {
	t.Parallel()

	m := &fakeModel{out: "Sure, here is the order:\n```json\n{\"items\":[{\"item\":\"chips\",\"quantity\":3}]}\n```\nLet me know if you need anything else."}
	e := New(Config{}, m)

	got, err := e.Parse(context.Background(), "the usual threesome", testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Item: "chips", Quantity: 3}}, got)
}

func TestParseExhausted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"model errors", &fakeModel{err: errors.New("boom")}},
		{"model returns prose", &fakeModel{out: "I could not find any items."}},
		{"model returns empty list", &fakeModel{out: `{"items":[]}`}},
		{"model returns unlisted items", &fakeModel{out: `{"items":[{"item":"pizza","quantity":2}]}`}},
		{"model returns junk envelope", &fakeModel{out: `{"items":"chai"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := New(Config{}, tt.model)
			_, err := e.Parse(context.Background(), "just checking", testCatalog)
			assert.ErrorIs(t, err, ErrExhausted)
			assert.Equal(t, 1, tt.model.calls)
		})
	}
}

func TestParseNilModel(t *testing.T) {
	t.Parallel()

	e := New(Config{}, nil)
	_, err := e.Parse(context.Background(), "just checking", testCatalog)
	assert.ErrorIs(t, err, ErrExhausted)

	// scanner still works without a model
	got, err := e.Parse(context.Background(), "2 chai", testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Item: "chai", Quantity: 2}}, got)
}

func TestParseTimeoutBounded(t *testing.T) {
	t.Parallel()

	m := &fakeModel{out: `{"items":[{"item":"chai","quantity":2}]}`, sleep: 10 * time.Second}
	e := New(Config{Timeout: 50 * time.Millisecond}, m)

	start := time.Now()
	_, err := e.Parse(context.Background(), "just checking", testCatalog)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Less(t, elapsed, 2*time.Second, "a hung model must not hang the call")
}

func TestParseEmptyCatalogUsesDefault(t *testing.T) {
	t.Parallel()

	e := New(Config{}, &fakeModel{})
	got, err := e.Parse(context.Background(), "2 chai", nil)
	require.NoError(t, err)
	assert.Equal(t, []Item{{Item: "chai", Quantity: 2}}, got)
}
