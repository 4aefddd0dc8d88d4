package custom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/behave/internal/core/models"
	"github.com/zeusync/behave/internal/core/observability/log"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib := NewLibrary(WithLogger(log.NewNop()))
	require.NoError(t, lib.RegisterType(NewType(testTypeName, newCounter, hasCount)))
	return lib
}

func TestRegisterDuplicateKeepsFirst(t *testing.T) {
	lib := newTestLibrary(t)
	first, ok := lib.GetType(testTypeName)
	require.True(t, ok)

	err := lib.RegisterType(NewType(testTypeName, newCounter, nil))
	assert.ErrorIs(t, err, ErrDuplicateType)

	got, ok := lib.GetType(testTypeName)
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, lib.Len())
}

func TestRegisterRejectsIncompleteTypes(t *testing.T) {
	lib := NewLibrary()
	assert.ErrorIs(t, lib.RegisterType(nil), ErrInvalidType)
	assert.ErrorIs(t, lib.RegisterType(NewType("", newCounter, nil)), ErrInvalidType)
	assert.ErrorIs(t, lib.RegisterType(NewType("x", nil, nil)), ErrInvalidType)
	assert.Zero(t, lib.Len())
}

func TestTypeExistsAndGetType(t *testing.T) {
	lib := NewLibrary()
	registered := []string{"a", "c", "b"}
	for _, name := range registered {
		require.NoError(t, lib.RegisterType(NewType(name, newCounter, nil)))
	}

	for _, name := range registered {
		assert.True(t, lib.TypeExists(name), name)
		typ, ok := lib.GetType(name)
		assert.True(t, ok, name)
		assert.NotNil(t, typ, name)
	}
	for _, name := range []string{"", "d", "A"} {
		assert.False(t, lib.TypeExists(name), name)
		typ, ok := lib.GetType(name)
		assert.False(t, ok, name)
		assert.Nil(t, typ, name)
	}

	assert.Equal(t, []string{"a", "b", "c"}, lib.TypeNames())
}

func TestForgetType(t *testing.T) {
	lib := newTestLibrary(t)
	doc := Document{TypeField: testTypeName, "count": 1}
	c, err := lib.CreateInstance(models.NewEntity(1, "e"), doc)
	require.NoError(t, err)
	require.True(t, c.FromJSON(doc))

	require.NoError(t, lib.ForgetType(testTypeName))
	assert.False(t, lib.TypeExists(testTypeName))
	assert.ErrorIs(t, lib.ForgetType(testTypeName), ErrUnknownType)
	assert.ErrorIs(t, lib.ForgetType("never"), ErrUnknownType)

	// existing instances keep working
	c.OnStep(1)
	assert.True(t, c.RemoveFlag())
}

func TestLibraryCreateInstance(t *testing.T) {
	calls := 0
	lib := NewLibrary()
	require.NoError(t, lib.RegisterType(NewType(testTypeName, countingFactory(&calls), hasCount)))
	e := models.NewEntity(1, "e")

	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{"missing type", Document{"count": 1}, ErrMissingTypeName},
		{"empty type", Document{TypeField: "", "count": 1}, ErrUnknownType},
		{"non-string type", Document{TypeField: 12, "count": 1}, ErrUnknownType},
		{"unknown type", Document{TypeField: "nope", "count": 1}, ErrUnknownType},
		{"invalid config", Document{TypeField: testTypeName}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := lib.CreateInstance(e, tt.doc)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, calls, "factory must not run for rejected documents")

	c, err := lib.CreateInstance(e, Document{TypeField: testTypeName, "count": 2})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, testTypeName, c.TypeName())
	assert.Same(t, e, c.Entity())
}

func TestLibraryIsValid(t *testing.T) {
	lib := newTestLibrary(t)
	assert.True(t, lib.IsValid(Document{TypeField: testTypeName, "count": 1}))
	assert.False(t, lib.IsValid(Document{TypeField: testTypeName}))
	assert.False(t, lib.IsValid(Document{TypeField: "nope", "count": 1}))
	assert.False(t, lib.IsValid(Document{"count": 1}))
	assert.False(t, lib.IsValid(nil))

	assert.ErrorIs(t, lib.Check(Document{TypeField: testTypeName}), ErrInvalidConfig)
}

func TestFingerprintTracksTypeSet(t *testing.T) {
	a := NewLibrary()
	b := NewLibrary()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.RegisterType(NewType(fmt.Sprintf("t%d", i), newCounter, nil)))
		require.NoError(t, b.RegisterType(NewType(fmt.Sprintf("t%d", 2-i), newCounter, nil)))
	}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.ForgetType("t1"))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
