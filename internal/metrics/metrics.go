// Package metrics exposes extended-operation build and dispatch counters as
// Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// Collector counts builds and dispatches. It implements extop.Recorder.
type Collector struct {
	builds     *prometheus.CounterVec
	dispatches *prometheus.CounterVec
	reg        prometheus.Registerer
}

// New creates a Collector and registers its metrics on reg (or the default
// registerer if nil). Metrics already registered by an earlier Collector on
// the same registerer are reused.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "extop_build_total",
		Help: "Extended operation payload builds by outcome",
	}, []string{"outcome"})

	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "extop_dispatch_total",
		Help: "Extended responses dispatched by OID and outcome",
	}, []string{"oid", "outcome"})

	var err error
	if builds, err = register(reg, builds); err != nil {
		return nil, err
	}
	if dispatches, err = register(reg, dispatches); err != nil {
		return nil, err
	}

	return &Collector{builds: builds, dispatches: dispatches, reg: reg}, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// BuildCompleted implements extop.Recorder.
func (c *Collector) BuildCompleted(outcome string) {
	c.builds.WithLabelValues(outcome).Inc()
}

// Dispatched implements extop.Recorder. An empty OID is reported as "none".
func (c *Collector) Dispatched(oid, outcome string) {
	if oid == "" {
		oid = "none"
	}
	c.dispatches.WithLabelValues(oid, outcome).Inc()
}

// WatchRegistry exports the number of factories in r as the gauge
// extop_registry_factories.
func (c *Collector) WatchRegistry(r *extop.Registry) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "extop_registry_factories",
		Help: "Response factories currently registered",
	}, func() float64 {
		return float64(r.Len())
	})
	if err := c.reg.Register(gauge); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}
