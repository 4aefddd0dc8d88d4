package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/behave/internal/config"
	"github.com/zeusync/behave/internal/core/custom/builtin"
)

func TestInitializeApp(t *testing.T) {
	a, err := InitializeApp(config.Default())
	require.NoError(t, err)
	assert.True(t, a.Library.TypeExists(builtin.TypeLifetime))
	assert.Same(t, a.Library, a.World.Library())
	assert.NotNil(t, a.Editor)
}

func TestInitializeAppRejectsBadLogConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Encoding = "xml"
	_, err := InitializeApp(cfg)
	assert.Error(t, err)
}
