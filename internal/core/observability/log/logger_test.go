package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	l, err := NewFromConfig(Config{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, l.GetLevel())

	l.SetLevel(LevelError)
	assert.Equal(t, LevelError, l.GetLevel())

	child := l.With(String("component", "test"))
	assert.Equal(t, LevelError, child.GetLevel())

	_, err = NewFromConfig(Config{Encoding: "xml"})
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("ignored", Int("n", 1), Strings("names", []string{"a"}), Error(assert.AnError))
		l.Log(LevelDebug, "ignored")
	})
}

func TestLoggersAreIndependent(t *testing.T) {
	a, err := NewFromConfig(Config{Level: "info"})
	require.NoError(t, err)
	b, err := NewFromConfig(Config{Level: "info"})
	require.NoError(t, err)

	a.SetLevel(LevelError)
	assert.Equal(t, LevelError, a.GetLevel())
	assert.Equal(t, LevelInfo, b.GetLevel())
}
