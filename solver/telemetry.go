// File: telemetry.go
// Role: The generation-boundary telemetry of §6 "Telemetry": a single
// GenerationEvent struct fans out to any number of TelemetrySink
// implementations. hclog and Prometheus are the two in-repo sinks (§2
// domain-stack wiring); both are optional and composable.
package solver

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
)

// GenerationEvent is reported once per completed generation.
type GenerationEvent struct {
	Generation       int
	Elapsed          time.Duration
	BestFitness      []float64
	ImprovementRatio float64
	SelectedOperator string
	Cancelled        bool
}

// TelemetrySink consumes GenerationEvents; Report must not block the loop for
// long (§5 "no locks on the hot path" — sinks are called between generations,
// never inside the evaluation loop itself).
type TelemetrySink interface {
	Report(event GenerationEvent)
}

// HCLogSink logs one debug line per generation via hashicorp/go-hclog,
// matching SPEC_FULL.md §1.1's field list.
type HCLogSink struct {
	Logger hclog.Logger
}

// NewHCLogSink returns a sink backed by logger, or a null logger if nil.
func NewHCLogSink(logger hclog.Logger) *HCLogSink {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &HCLogSink{Logger: logger}
}

// Report implements TelemetrySink.
func (s *HCLogSink) Report(event GenerationEvent) {
	if event.Cancelled {
		s.Logger.Debug("generation", "index", event.Generation, "cancelled", true)

		return
	}
	s.Logger.Debug("generation",
		"index", event.Generation,
		"elapsed_ms", event.Elapsed.Milliseconds(),
		"best_fitness", fmt.Sprintf("%v", event.BestFitness),
		"improvement_ratio", event.ImprovementRatio,
		"operator", event.SelectedOperator,
	)
}

// PrometheusSink exposes generation counters/gauges as an alternative sink to
// HCLogSink, both driven from the same GenerationEvent (§2, §6).
type PrometheusSink struct {
	generations      prometheus.Counter
	improvementRatio prometheus.Gauge
	elapsed          prometheus.Histogram
	cancelled        prometheus.Counter
}

// NewPrometheusSink registers its metrics on registerer (use
// prometheus.DefaultRegisterer for the global registry, or a fresh
// prometheus.NewRegistry() in tests to avoid collisions across runs).
func NewPrometheusSink(registerer prometheus.Registerer, namespace string) *PrometheusSink {
	s := &PrometheusSink{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "generations_total",
			Help: "Number of metaheuristic generations completed.",
		}),
		improvementRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "improvement_ratio",
			Help: "Most recent generation's improvement ratio over the population baseline.",
		}),
		elapsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "generation_seconds",
			Help: "Per-generation wall-clock duration.",
		}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cancelled_total",
			Help: "Number of runs that ended via cancellation.",
		}),
	}
	registerer.MustRegister(s.generations, s.improvementRatio, s.elapsed, s.cancelled)

	return s
}

// Report implements TelemetrySink.
func (s *PrometheusSink) Report(event GenerationEvent) {
	if event.Cancelled {
		s.cancelled.Inc()

		return
	}
	s.generations.Inc()
	s.improvementRatio.Set(event.ImprovementRatio)
	s.elapsed.Observe(event.Elapsed.Seconds())
}

// MultiSink fans one event out to every sink it wraps.
type MultiSink []TelemetrySink

// Report implements TelemetrySink.
func (m MultiSink) Report(event GenerationEvent) {
	for _, sink := range m {
		sink.Report(event)
	}
}
