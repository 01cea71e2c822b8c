package sched

import (
	"fmt"
	"math"
	"strings"
)

// Policy selects a scheduling strategy.
type Policy int

const (
	FCFS Policy = iota
	SJF
	Priority
	RoundRobin
)

// Policies lists every policy in canonical order.
func Policies() []Policy { return []Policy{FCFS, SJF, Priority, RoundRobin} }

func (p Policy) String() string {
	switch p {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "RoundRobin"
	default:
		return "Unknown"
	}
}

// MarshalText encodes p by name, so JSON and YAML carry "SJF" rather than 1.
func (p Policy) MarshalText() ([]byte, error) {
	if p < FCFS || p > RoundRobin {
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidParameter, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText accepts any name ParsePolicy accepts.
func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Preemptive reports whether a running task can be paused under p.
func (p Policy) Preemptive() bool { return p == RoundRobin }

// ParsePolicy accepts the usual short names, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "fifo":
		return FCFS, nil
	case "sjf":
		return SJF, nil
	case "priority", "prio":
		return Priority, nil
	case "rr", "round-robin", "roundrobin", "round_robin":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("unknown scheduling policy %q", s)
	}
}

// Strategy turns a task snapshot into per-task results and an execution trace.
// Implementations must not retain or modify the slice they are given.
type Strategy interface {
	Policy() Policy
	Schedule(tasks []Task) (Plan, error)
}

// Plan is the raw output of a strategy: completion order, results, and the
// execution history in start-time order.
type Plan struct {
	Order   []TaskID
	Results map[TaskID]ScheduleResult
	History []Segment
}

// Option tweaks a strategy built by NewStrategy.
type Option func(*strategyOptions)

type strategyOptions struct {
	maxSlices int
}

// WithMaxSlices lowers the round-robin iteration ceiling. Zero keeps the
// derived ceiling.
func WithMaxSlices(n int) Option {
	return func(o *strategyOptions) { o.maxSlices = n }
}

// NewStrategy builds the strategy for p. The quantum is only consulted for
// round-robin and must be a positive finite number there.
func NewStrategy(p Policy, quantum float64, opts ...Option) (Strategy, error) {
	var o strategyOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch p {
	case FCFS:
		return &nonPreemptive{policy: FCFS, key: func(t Task) float64 { return t.ArrivalTime }}, nil
	case SJF:
		return &nonPreemptive{policy: SJF, key: func(t Task) float64 { return t.ExecutionTime }}, nil
	case Priority:
		return &nonPreemptive{policy: Priority, key: func(t Task) float64 { return t.Priority }}, nil
	case RoundRobin:
		if math.IsNaN(quantum) || math.IsInf(quantum, 0) || quantum <= 0 {
			return nil, &InvalidParameterError{Name: "time_quantum", Value: quantum, Reason: "must be a positive finite number"}
		}
		return &roundRobin{quantum: quantum, maxSlices: o.maxSlices}, nil
	default:
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidParameter, int(p))
	}
}
