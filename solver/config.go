// File: config.go
// Role: Functional options aggregating population, termination, telemetry,
// stall and cancellation configuration (§1.3), mirroring the teacher's small
// With* constructors over an unexported options struct.
package solver

import (
	"github.com/katalvlaran/vrpcore/population"
)

// Default schedule constants, mirroring the teacher's documented-default
// idiom (e.g. tsp.DefaultEps, tsp.DefaultTwoOptMaxIters).
const (
	DefaultInitialEpsilon = 0.3
	DefaultMinEpsilon     = 0.05
	DefaultDecayGenerations = 500
	DefaultMaxGenerations   = 2000
)

// Config aggregates everything Loop needs beyond the Problem and Selector.
type Config struct {
	Population  population.Population
	Termination Termination
	Telemetry   TelemetrySink
	StallAfter  int // generations without a population improvement before Select is told to diversify
	Cancel      *CancelToken
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithPopulation sets the population strategy (elitism or rosomaxa).
func WithPopulation(p population.Population) Option {
	return func(c *Config) { c.Population = p }
}

// WithTermination sets the termination predicate.
func WithTermination(t Termination) Option {
	return func(c *Config) { c.Termination = t }
}

// WithTelemetry sets the telemetry sink (use MultiSink to combine several).
func WithTelemetry(sink TelemetrySink) Option {
	return func(c *Config) { c.Telemetry = sink }
}

// WithStallAfter sets how many generations without improvement trigger a
// diversify mutation regardless of what Select would otherwise choose.
func WithStallAfter(n int) Option {
	return func(c *Config) { c.StallAfter = n }
}

// WithCancelToken attaches an externally-owned cancellation token.
func WithCancelToken(token *CancelToken) Option {
	return func(c *Config) { c.Cancel = token }
}

// NewConfig builds a Config with documented defaults, then applies opts.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		Termination: Composite{MaxGenerations{Limit: DefaultMaxGenerations}},
		Telemetry:   MultiSink(nil),
		StallAfter:  50,
		Cancel:      NewCancelToken(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
