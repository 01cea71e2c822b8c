// internal/sched/scheduler.go

package sched

import (
	"sync"

	"github.com/rs/zerolog"
)

// Scheduler ties a task registry to configured runs and logs each of them.
type Scheduler struct {
	mu   sync.Mutex // protects last
	reg  *Registry
	cfg  Config
	log  zerolog.Logger
	last *Outcome // most recent successful run
}

// New creates a scheduler with an empty registry.
func New(cfg Config, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		reg: NewRegistry(),
		cfg: cfg,
		log: log.With().Str("component", "scheduler").Logger(),
	}
}

func (s *Scheduler) Registry() *Registry { return s.reg }
func (s *Scheduler) Config() Config      { return s.cfg }

// Add registers or replaces a task.
func (s *Scheduler) Add(t Task) error {
	if err := s.reg.Upsert(t); err != nil {
		s.log.Warn().Err(err).Int64("task_id", int64(t.ID)).Msg("task rejected")
		return err
	}
	s.log.Debug().Int64("task_id", int64(t.ID)).Msg("task registered")
	return nil
}

// AddAll registers tasks in order and stops at the first rejected one.
func (s *Scheduler) AddAll(tasks []Task) error {
	for _, t := range tasks {
		if err := s.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Clear empties the registry and forgets the last run.
func (s *Scheduler) Clear() {
	s.reg.Clear()
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
	s.log.Debug().Msg("registry cleared")
}

// Run schedules the current registry snapshot under p using the configured
// quantum and records the results.
func (s *Scheduler) Run(p Policy) (*Outcome, error) {
	return s.RunWithQuantum(p, s.cfg.Quantum)
}

// RunConfigured runs the policy named in the config.
func (s *Scheduler) RunConfigured() (*Outcome, error) {
	return s.Run(s.cfg.Policy)
}

// RunWithQuantum is Run with an explicit round-robin quantum.
func (s *Scheduler) RunWithQuantum(p Policy, quantum float64) (*Outcome, error) {
	snap := s.reg.Snapshot()
	o, err := Run(snap, p, quantum, s.cfg.StrategyOptions()...)
	if err != nil {
		s.log.Error().Err(err).Str("policy", p.String()).Int("tasks", len(snap)).Msg("run failed")
		return nil, err
	}

	s.reg.Record(o)
	s.mu.Lock()
	s.last = o
	s.mu.Unlock()

	s.logOutcome(o)
	return o, nil
}

// Compare runs every policy on one snapshot. Results are not recorded.
func (s *Scheduler) Compare() ([]*Outcome, error) {
	snap := s.reg.Snapshot()
	outs, err := Compare(snap, s.cfg.Quantum, s.cfg.StrategyOptions()...)
	if err != nil {
		s.log.Error().Err(err).Int("tasks", len(snap)).Msg("compare failed")
		return nil, err
	}
	for _, o := range outs {
		s.logOutcome(o)
	}
	return outs, nil
}

// Last returns the most recent successful run, if any.
func (s *Scheduler) Last() *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) logOutcome(o *Outcome) {
	ev := s.log.Info().
		Str("policy", o.Policy.String()).
		Int("tasks", len(o.Tasks)).
		Float64("makespan", o.Metrics.Makespan).
		Float64("energy", o.Metrics.TotalEnergy).
		Float64("utilization", o.Metrics.Utilization).
		Float64("avg_turnaround", o.Metrics.AvgTurnaround).
		Float64("avg_waiting", o.Metrics.AvgWaiting)
	if o.Policy.Preemptive() {
		ev = ev.Float64("quantum", o.Quantum).Int("slices", len(o.Trace.Segments))
	}
	ev.Msg("run complete")
}
