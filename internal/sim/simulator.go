// Package sim orchestrates integration runs: it owns the step loop
// that hands the container's flat buffer to the integrator and rewraps
// the result into a fresh container every step.
package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitsim/internal/ode"
	"github.com/san-kum/orbitsim/internal/physics"
)

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

// Observer is called after every step with the freshly rewrapped
// container. The container (and any view into it) is only valid until
// the next step.
type Observer interface {
	OnStep(state *physics.State, t float64)
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(state *physics.State, t float64)
	Value() float64
	Reset()
}

// StepError reports a failure at a specific step of a run.
type StepError struct {
	Step    int
	Time    float64
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

type Result struct {
	Times      []float64
	Vectors    []ode.Vector
	StepsTaken int
	Metrics    map[string]float64
	Final      *physics.State
}

type Simulator struct {
	sys       ode.System
	integ     ode.Integrator
	observers []Observer
	metrics   []Metric
}

func New(sys ode.System, integ ode.Integrator) *Simulator {
	return &Simulator{
		sys:       sys,
		integ:     integ,
		observers: make([]Observer, 0),
		metrics:   make([]Metric, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }

// Run advances state for cfg.Duration of simulated seconds, scaled by
// the state's time acceleration factor. The input container is
// consumed: every step replaces it via the hot rewrap path, and the
// final container is returned in the result.
func (s *Simulator) Run(ctx context.Context, state *physics.State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Vectors: make([]ode.Vector, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	t := state.Timestamp()
	for _, m := range s.metrics {
		m.Reset()
		m.Observe(state, t)
	}
	result.Times = append(result.Times, t)
	result.Vectors = append(result.Vectors, ode.Vector(state.Vector()).Clone())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Final = state
			return result, ctx.Err()
		default:
		}

		dt := cfg.Dt * state.TimeAcc()
		y := s.integ.Step(s.sys, state.Vector(), t, dt)

		if cfg.ValidateState && !y.IsValid() {
			result.Final = state
			return result, StepError{Step: i, Time: t, Message: "invalid state (NaN/Inf)"}
		}

		state = state.Rewrap(y)
		t += dt
		state.SetTimestamp(t)
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(state, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(state, t)
		}

		result.Times = append(result.Times, t)
		result.Vectors = append(result.Vectors, y.Clone())
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = state
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
