package custom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/input"
	"github.com/zeusync/behave/internal/core/models"
)

// bare only supplies TypeName and relies on Base for everything else.
type bare struct{ Base }

func (*bare) TypeName() string { return "test.bare" }

func TestBaseDefaults(t *testing.T) {
	e := models.NewEntity(1, "e")
	c := &bare{Base: NewBase(e)}

	assert.Same(t, e, c.Entity())
	assert.NotPanics(t, func() {
		c.OnStep(0.016)
		c.HandleInput(input.NewState(), 0.016)
		c.OnBeginContact(models.NewEntity(2, "other"))
		c.OnEndContact(models.NewEntity(2, "other"))
		c.GUIControls(gui.NewRecorder())
	})
	assert.Equal(t, Document{}, c.ToJSON())
	assert.True(t, c.FromJSON(Document{"anything": []any{1, "x"}}))
	assert.True(t, c.FromJSON(nil))
}

func TestRemoveFlagIsMonotonic(t *testing.T) {
	c := newCounter(models.NewEntity(1, "e")).(*counter)
	c.Count = 2
	assert.False(t, c.RemoveFlag())

	c.OnStep(1)
	assert.False(t, c.RemoveFlag())
	c.OnStep(1)
	assert.True(t, c.RemoveFlag())

	for i := 0; i < 5; i++ {
		c.OnStep(1)
		c.RequestRemoval()
		assert.True(t, c.RemoveFlag())
	}
}

func TestComponentRoundTrip(t *testing.T) {
	src := newCounter(models.NewEntity(1, "a")).(*counter)
	src.Count, src.Label = 7, "seven"

	doc, err := src.ToJSON().WithType(src.TypeName()).Clone()
	require.NoError(t, err)

	dst := newCounter(models.NewEntity(2, "b")).(*counter)
	require.True(t, dst.FromJSON(doc))
	assert.Equal(t, src.Count, dst.Count)
	assert.Equal(t, src.Label, dst.Label)
	assert.Equal(t, src.ToJSON(), dst.ToJSON())
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	c := newCounter(models.NewEntity(1, "a"))
	assert.False(t, c.FromJSON(Document{"count": "many"}))
	assert.False(t, c.FromJSON(Document{}))
}
