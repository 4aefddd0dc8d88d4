package gui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(ui Controls, speed *float64, lives *int, god *bool) {
	ui.Text("name", "player")
	ui.Float("speed", speed, 0, 10)
	ui.Int("lives", lives, 0, 5)
	ui.Bool("god mode", god)
}

func TestRecorderCapturesControls(t *testing.T) {
	speed, lives, god := 2.5, 3, false
	r := NewRecorder()
	draw(r, &speed, &lives, &god)

	controls := r.Controls()
	require.Len(t, controls, 4)
	assert.Equal(t, KindText, controls[0].Kind)
	assert.Equal(t, 2.5, controls[1].Value)
	assert.Equal(t, 10.0, *controls[1].Max)
	assert.Equal(t, 3, controls[2].Value)
	assert.Equal(t, false, controls[3].Value)
	assert.Empty(t, r.Applied())
}

func TestEditorAppliesClampedEdits(t *testing.T) {
	speed, lives, god := 2.5, 3, false
	r := NewEditor(map[string]any{
		"speed":    42.0,
		"lives":    1,
		"god mode": true,
		"unknown":  7,
	})
	draw(r, &speed, &lives, &god)

	assert.Equal(t, 10.0, speed)
	assert.Equal(t, 1, lives)
	assert.True(t, god)
	assert.Equal(t, []string{"speed", "lives", "god mode"}, r.Applied())
}

func TestEditorIgnoresWrongTypes(t *testing.T) {
	speed := 1.0
	r := NewEditor(map[string]any{"speed": "fast"})
	assert.False(t, r.Float("speed", &speed, 0, 5))
	assert.Equal(t, 1.0, speed)
}

func TestEditorSaturatesUnboundedInts(t *testing.T) {
	n := 0
	r := NewEditor(map[string]any{"n": 1e300})
	assert.True(t, r.Int("n", &n, 1, 0))
	assert.Equal(t, math.MaxInt, n)

	r = NewEditor(map[string]any{"n": -1e300})
	assert.True(t, r.Int("n", &n, 1, 0))
	assert.Equal(t, math.MinInt, n)

	r = NewEditor(map[string]any{"n": math.NaN()})
	assert.False(t, r.Int("n", &n, 1, 0))
	assert.Equal(t, math.MinInt, n)
}
