package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/behave/internal/config"
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/custom/builtin"
	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/core/system"
)

func newApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	lib := custom.NewLibrary()
	require.NoError(t, builtin.Register(lib))
	return New(cfg, log.NewNop(), lib, system.New(lib), nil)
}

func TestRunStepsWorldUntilCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entities:
  - name: spark
    component: {type: lifetime, seconds: 0.05}
  - name: ghost
    component: {type: ghost}
  - name: wheel
    component: {type: spinner, rate: 1}
`), 0o644))

	cfg := config.Default()
	cfg.Editor.Enabled = false
	cfg.World.TickRate = 200
	cfg.Scene.Path = path
	a := newApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		n := -1
		_ = a.World.Do(ctx, func(w *system.World) error { n = w.Len(); return nil })
		return n == 1
	}, 2*time.Second, 10*time.Millisecond, "lifetime entity should expire, ghost should never spawn")

	cancel()
	assert.NoError(t, <-done)
}

func TestRunFailsOnMissingScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Path = filepath.Join(t.TempDir(), "nope.json")
	err := newApp(t, cfg).Run(context.Background())
	assert.Error(t, err)
}
