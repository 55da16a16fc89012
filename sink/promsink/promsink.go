// Package promsink counts logged xgxresult records in Prometheus.
//
// Sink decorates another xgxresult.Logger: it increments
// <namespace>_logged_errors_total{level="..."} and forwards the entry. Because a
// Result logs each record at most once, the counter counts distinct records.
package promsink

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	xgxresult "github.com/xgx-io/xgx-result"
)

const defaultNamespace = "xgxresult"

type config struct {
	namespace string
	subsystem string
	reg       prometheus.Registerer
}

// Option configures New.
type Option func(*config)

// Namespace sets the metric namespace. Defaults to "xgxresult".
func Namespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// Subsystem sets the metric subsystem.
func Subsystem(sub string) Option {
	return func(c *config) { c.subsystem = sub }
}

// Registerer sets where the counter is registered. Defaults to
// prometheus.DefaultRegisterer.
func Registerer(reg prometheus.Registerer) Option {
	return func(c *config) { c.reg = reg }
}

// Sink is an xgxresult.Logger that counts entries before forwarding them.
type Sink struct {
	next   xgxresult.Logger
	logged *prometheus.CounterVec
}

// New registers the counter and returns a Sink forwarding to next, which may be
// nil. Registering twice with the same options reuses the existing counter.
func New(next xgxresult.Logger, opts ...Option) (*Sink, error) {
	cfg := &config{
		namespace: defaultNamespace,
		reg:       prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.namespace,
		Subsystem: cfg.subsystem,
		Name:      "logged_errors_total",
		Help:      "Number of operation result errors written to a log sink, by level.",
	}, []string{"level"})

	if err := cfg.reg.Register(logged); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		logged = existing
	}

	return &Sink{next: next, logged: logged}, nil
}

// Log implements xgxresult.Logger.
func (s *Sink) Log(level xgxresult.Level, msg string) {
	if level == 0 {
		level = xgxresult.LevelError
	}
	s.logged.WithLabelValues(level.String()).Inc()
	if s.next != nil {
		s.next.Log(level, msg)
	}
}
