package custom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/behave/internal/core/models"
)

func TestTypeCreateInstance(t *testing.T) {
	calls := 0
	typ := NewType(testTypeName, countingFactory(&calls), hasCount)
	e := models.NewEntity(1, "e")

	c := typ.CreateInstance(e)
	require.NotNil(t, c)
	assert.Equal(t, 1, calls)
	assert.Same(t, e, c.Entity())
	assert.Equal(t, testTypeName, typ.Name())
}

func TestTypeVerifyJSON(t *testing.T) {
	typ := NewType(testTypeName, newCounter, hasCount)
	assert.True(t, typ.VerifyJSON(Document{"count": 1}))
	assert.False(t, typ.VerifyJSON(Document{"label": "x"}))

	open := NewType("open", newCounter, nil)
	assert.True(t, open.VerifyJSON(nil))
}

func TestTypeCreateInstanceFromJSONSkipsFactoryOnInvalid(t *testing.T) {
	calls := 0
	typ := NewType(testTypeName, countingFactory(&calls), hasCount)

	c, err := typ.CreateInstanceFromJSON(models.NewEntity(1, "e"), Document{"label": "x"})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, calls)

	c, err = typ.CreateInstanceFromJSON(models.NewEntity(1, "e"), Document{"count": 3})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, typ.Name(), c.TypeName())
}

func TestTypeFactoryReturningNil(t *testing.T) {
	typ := NewType("nil", func(*models.Entity) Component { return nil }, nil)
	_, err := typ.CreateInstanceFromJSON(models.NewEntity(1, "e"), Document{})
	assert.ErrorIs(t, err, ErrNilInstance)
}
