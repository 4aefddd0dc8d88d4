package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/behave/internal/config"
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/core/system"
	"github.com/zeusync/behave/internal/editor"
	"github.com/zeusync/behave/internal/scene"
)

// App is the assembled sandbox: a world driven at the configured tick rate and
// an optional editor endpoint.
type App struct {
	Config  config.Config
	Log     log.Log
	Library *custom.Library
	World   *system.World
	Editor  *editor.Server
}

func New(cfg config.Config, logger log.Log, lib *custom.Library, world *system.World, ed *editor.Server) *App {
	return &App{Config: cfg, Log: logger, Library: lib, World: world, Editor: ed}
}

// LoadScene spawns the configured scene into the world. Individual entity
// failures are logged and do not stop the app.
func (a *App) LoadScene() error {
	path := a.Config.Scene.Path
	if path == "" {
		return nil
	}
	s, err := scene.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	if err = s.Spawn(a.World, a.Log); err != nil {
		a.Log.Warn("scene loaded with errors", log.String("path", path), log.Error(err))
	}
	a.Log.Info("scene loaded",
		log.String("path", path), log.Int("entities", a.World.Len()), log.Strings("types", a.Library.TypeNames()))
	return nil
}

// Run loads the scene and blocks until ctx is cancelled or a component of the
// app fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.LoadScene(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.World.Run(ctx, a.Config.World.TickRate, a.Config.World.MaxDelta)
	})
	if a.Config.Editor.Enabled && a.Editor != nil {
		g.Go(func() error {
			return a.Editor.ListenAndServe(ctx, a.Config.Editor.Addr)
		})
	}
	return g.Wait()
}
