// Package metrics exports sandbox counters in the prometheus text format.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zeusync/behave/internal/core/events/bus"
	"github.com/zeusync/behave/internal/core/system"
)

const namespace = "behave"

// Metrics owns a private registry so several worlds (or tests) never collide
// on the global one.
type Metrics struct {
	registry *prometheus.Registry

	entities prometheus.Gauge
	spawned  *prometheus.CounterVec
	removed  *prometheus.CounterVec
	contacts prometheus.Counter
	requests *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "world", Name: "entities",
			Help: "Entities currently alive in the world.",
		}),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "world", Name: "spawned_total",
			Help: "Entities spawned, by component type.",
		}, []string{"type"}),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "world", Name: "removed_total",
			Help: "Entities removed, by component type.",
		}, []string{"type"}),
		contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "world", Name: "contacts_total",
			Help: "Contacts that began.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "editor", Name: "requests_total",
			Help: "Editor requests, by operation and result code.",
		}, []string{"op", "code"}),
	}
	m.registry.MustRegister(m.entities, m.spawned, m.removed, m.contacts, m.requests)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe subscribes to the world events published on b.
func (m *Metrics) Observe(b bus.EventBus) error {
	var errs error
	subscribe := func(eventType string, h bus.EventHandler) {
		if _, err := b.Subscribe(eventType, h); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	subscribe(system.EventEntitySpawned, func(e bus.Event) error {
		if ev, ok := e.Data().(system.EntityEvent); ok {
			m.entities.Inc()
			m.spawned.WithLabelValues(typeLabel(ev.Type)).Inc()
		}
		return nil
	})
	subscribe(system.EventEntityRemoved, func(e bus.Event) error {
		if ev, ok := e.Data().(system.EntityEvent); ok {
			m.entities.Dec()
			m.removed.WithLabelValues(typeLabel(ev.Type)).Inc()
		}
		return nil
	})
	subscribe(system.EventContactBegin, func(bus.Event) error {
		m.contacts.Inc()
		return nil
	})
	return errs
}

// ObserveRequest counts one editor request. An empty code means success.
// Safe to call on a nil *Metrics.
func (m *Metrics) ObserveRequest(op, code string) {
	if m == nil {
		return
	}
	if code == "" {
		code = "ok"
	}
	m.requests.WithLabelValues(op, code).Inc()
}

func typeLabel(t string) string {
	if t == "" {
		return "none"
	}
	return t
}
