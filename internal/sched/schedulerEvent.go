// internal/sched/schedulerEvent.go

package sched

import (
	"cmp"
	"slices"
)

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusEnqueue
	StatusDispatch
	StatusPreempt
	StatusFinish
)

// StatusEvent marks a point on the simulated timeline.
type StatusEvent struct {
	Time      float64
	Kind      StatusKind
	TaskID    TaskID  // unset for StatusIdle
	Ran       float64 // slice length, set on Preempt and Finish
	Remaining float64 // burst left after the slice, set on Preempt and Finish
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusIdle:
		return "Idle"
	case StatusEnqueue:
		return "Enqueued"
	case StatusDispatch:
		return "Dispatch"
	case StatusPreempt:
		return "Preempt"
	case StatusFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// rank orders events that share a timestamp: whatever leaves the CPU first,
// then idle, arrivals, and finally the next dispatch.
func (sk StatusKind) rank() int {
	switch sk {
	case StatusFinish, StatusPreempt:
		return 0
	case StatusIdle:
		return 1
	case StatusEnqueue:
		return 2
	default:
		return 3
	}
}

// Events replays an outcome as an ordered event stream for consumers that
// animate or log a timeline.
func Events(o *Outcome) []StatusEvent {
	if o == nil {
		return nil
	}

	remaining := make(map[TaskID]float64, len(o.Tasks))
	events := make([]StatusEvent, 0, len(o.Tasks)+3*len(o.Trace.Segments)+len(o.Trace.Idle))
	for _, t := range o.Tasks {
		remaining[t.ID] = t.ExecutionTime
		events = append(events, StatusEvent{Time: t.ArrivalTime, Kind: StatusEnqueue, TaskID: t.ID})
	}
	for _, g := range o.Trace.Idle {
		events = append(events, StatusEvent{Time: g.Start, Kind: StatusIdle})
	}

	for _, s := range o.Trace.Segments {
		events = append(events, StatusEvent{Time: s.Start, Kind: StatusDispatch, TaskID: s.TaskID})

		left := remaining[s.TaskID] - s.Duration()
		kind := StatusPreempt
		if left <= Epsilon {
			kind, left = StatusFinish, 0
		}
		remaining[s.TaskID] = left
		events = append(events, StatusEvent{
			Time:      s.End,
			Kind:      kind,
			TaskID:    s.TaskID,
			Ran:       s.Duration(),
			Remaining: left,
		})
	}

	slices.SortStableFunc(events, func(a, b StatusEvent) int {
		if c := cmp.Compare(a.Time, b.Time); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Kind.rank(), b.Kind.rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.TaskID, b.TaskID)
	})
	return events
}
