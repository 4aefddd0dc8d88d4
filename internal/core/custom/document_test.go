package custom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"type":"lifetime","seconds":2}`))
	require.NoError(t, err)
	name, ok := doc.TypeName()
	assert.True(t, ok)
	assert.Equal(t, "lifetime", name)
	assert.Equal(t, 2.0, doc["seconds"])

	_, err = ParseDocument([]byte(`[1,2]`))
	assert.Error(t, err)
	_, err = ParseDocument([]byte(`null`))
	assert.Error(t, err)
}

func TestDocumentFromNormalizesValues(t *testing.T) {
	doc, err := DocumentFrom(map[string]any{
		"n":      3,
		"nested": map[string]any{"k": int64(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, doc["n"])
	assert.Equal(t, map[string]any{"k": 4.0}, doc["nested"])
}

func TestDocumentWithTypeDoesNotMutate(t *testing.T) {
	base := Document{"a": 1.0}
	typed := base.WithType("x")
	_, ok := base.TypeName()
	assert.False(t, ok)
	name, _ := typed.TypeName()
	assert.Equal(t, "x", name)
}

func TestDocumentCloneIsDeep(t *testing.T) {
	doc := Document{"nested": map[string]any{"k": 1.0}}
	clone, err := doc.Clone()
	require.NoError(t, err)
	clone["nested"].(map[string]any)["k"] = 2.0
	assert.Equal(t, 1.0, doc["nested"].(map[string]any)["k"])
}

func TestDocumentDecode(t *testing.T) {
	var v struct {
		Speed float64 `json:"speed"`
	}
	require.NoError(t, Document{"speed": 1.5}.Decode(&v))
	assert.Equal(t, 1.5, v.Speed)
	assert.Error(t, Document{"speed": "fast"}.Decode(&v))
}
