package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	p := buildPrompt(`bhai 2 chai de dena`, testCatalog)

	// every catalog line present
	assert.Contains(t, p, "- chai: Rs 10")
	assert.Contains(t, p, "- chips: Rs 10")
	assert.Contains(t, p, "- choti: Rs 10")
	assert.Contains(t, p, "- connect: Rs 15")
	assert.Contains(t, p, "- samosa: Rs 15")

	// raw message embedded verbatim (quoted)
	assert.Contains(t, p, `"bhai 2 chai de dena"`)

	// demanded output shape
	assert.Contains(t, p, `{"items": [{"item": "<menu name>", "quantity": <number>}]}`)
}

func TestBuildPromptDeterministic(t *testing.T) {
	t.Parallel()

	// map iteration order must not leak into the prompt
	first := buildPrompt("2 chai", testCatalog)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, buildPrompt("2 chai", testCatalog))
	}
}
