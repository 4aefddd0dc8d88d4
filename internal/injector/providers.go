package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/behave/internal/app"
	"github.com/zeusync/behave/internal/config"
	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/custom/builtin"
	"github.com/zeusync/behave/internal/core/events/bus"
	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/core/observability/metrics"
	"github.com/zeusync/behave/internal/core/system"
	"github.com/zeusync/behave/internal/editor"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideLibrary,
	metrics.New,
	ProvideBus,
	ProvideWorld,
	ProvideEditor,
	app.New,
)

func ProvideLogger(cfg config.Config) (*log.Logger, error) {
	return log.NewFromConfig(cfg.Log)
}

// ProvideLibrary returns a library holding the builtin component types.
func ProvideLibrary(logger log.Log) (*custom.Library, error) {
	lib := custom.NewLibrary(custom.WithLogger(logger.With(log.String("subsystem", "library"))))
	if err := builtin.Register(lib); err != nil {
		return nil, err
	}
	return lib, nil
}

// ProvideBus returns the world's event bus with the metrics subscribers
// attached.
func ProvideBus(m *metrics.Metrics) (bus.EventBus, error) {
	b := bus.New()
	if err := m.Observe(b); err != nil {
		return nil, err
	}
	return b, nil
}

func ProvideWorld(lib *custom.Library, b bus.EventBus, logger log.Log) *system.World {
	return system.New(lib,
		system.WithBus(b),
		system.WithLogger(logger.With(log.String("subsystem", "world"))),
	)
}

func ProvideEditor(world *system.World, m *metrics.Metrics, logger log.Log) *editor.Server {
	return editor.New(world,
		editor.WithLogger(logger.With(log.String("subsystem", "editor"))),
		editor.WithMetrics(m),
	)
}
