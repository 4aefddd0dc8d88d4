package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/behave/internal/config"
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/injector"
	"github.com/zeusync/behave/internal/scene"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "behave-sandbox:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, scenePath string

	cmd := &cobra.Command{
		Use:           "behave-sandbox",
		Short:         "Run a world of custom components with an editor endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, scenePath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&scenePath, "scene", "", "scene file to load, overrides scene.path")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "types",
			Short: "List the registered component types",
			RunE: func(cmd *cobra.Command, _ []string) error {
				lib, err := injector.ProvideLibrary(log.NewNop())
				if err != nil {
					return err
				}
				for _, name := range lib.TypeNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate <scene>",
			Short: "Check every component document of a scene without running it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, err := injector.ProvideLibrary(log.NewNop())
				if err != nil {
					return err
				}
				s, err := scene.LoadFile(args[0])
				if err != nil {
					return err
				}
				return validate(cmd.OutOrStdout(), lib, s)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "behave-sandbox", version)
			},
		},
	)
	return cmd
}

func run(ctx context.Context, configPath, scenePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scenePath != "" {
		cfg.Scene.Path = scenePath
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	if s, ok := app.Log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Log.Info("sandbox starting",
		log.Int("tick_rate", cfg.World.TickRate), log.Bool("editor", cfg.Editor.Enabled), log.String("addr", cfg.Editor.Addr))
	if err = app.Run(ctx); err != nil {
		app.Log.Error("sandbox stopped", log.Error(err))
		return err
	}
	app.Log.Info("sandbox stopped")
	return nil
}

// validate prints one line per entity and fails if any component document is
// rejected.
func validate(out io.Writer, lib *custom.Library, s *scene.Scene) error {
	var errs error
	for i, e := range s.Entities {
		if e.Component == nil {
			fmt.Fprintf(out, "%d %s: no component\n", i, e.Name)
			continue
		}
		if err := lib.Check(e.Component); err != nil {
			fmt.Fprintf(out, "%d %s: %v\n", i, e.Name, err)
			errs = errors.Join(errs, fmt.Errorf("entity %d (%s): %w", i, e.Name, err))
			continue
		}
		fmt.Fprintf(out, "%d %s: ok\n", i, e.Name)
	}
	return errs
}
