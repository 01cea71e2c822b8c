// internal/sched/trace.go

package sched

import (
	"cmp"
	"slices"
)

// Segment is one contiguous stretch of CPU time given to a task.
type Segment struct {
	TaskID TaskID  `json:"task_id"`
	Start  float64 `json:"start_time"`
	End    float64 `json:"end_time"`
}

func (s Segment) Duration() float64 { return s.End - s.Start }

// Gap is an interval where no task is running.
type Gap struct {
	Start float64 `json:"start_time"`
	End   float64 `json:"end_time"`
}

func (g Gap) Duration() float64 { return g.End - g.Start }

// Trace is the presentation-agnostic timeline of a run.
type Trace struct {
	Segments []Segment `json:"segments"`
	Idle     []Gap     `json:"idle"`
	Makespan float64   `json:"makespan"`
}

// TraceFromResults derives the timeline of a non-preemptive run from its
// completion times: each task occupies [completion-execution, completion].
func TraceFromResults(tasks []Task, results map[TaskID]ScheduleResult) Trace {
	segs := make([]Segment, 0, len(tasks))
	for _, t := range tasks {
		res, ok := results[t.ID]
		if !ok {
			continue
		}
		segs = append(segs, Segment{
			TaskID: t.ID,
			Start:  res.CompletionTime - t.ExecutionTime,
			End:    res.CompletionTime,
		})
	}
	return TraceFromHistory(segs)
}

// TraceFromHistory normalizes a recorded execution history into a trace.
// The input is not modified.
func TraceFromHistory(history []Segment) Trace {
	segs := slices.Clone(history)
	slices.SortStableFunc(segs, func(a, b Segment) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.TaskID, b.TaskID)
	})

	tr := Trace{Segments: segs}
	current := 0.0
	for _, s := range segs {
		if s.Start > current {
			tr.Idle = append(tr.Idle, Gap{Start: current, End: s.Start})
		}
		current = max(current, s.End)
		tr.Makespan = max(tr.Makespan, s.End)
	}
	return tr
}

// BusyTime sums the segment durations.
func (tr Trace) BusyTime() float64 {
	total := 0.0
	for _, s := range tr.Segments {
		total += s.Duration()
	}
	return total
}

// IdleTime sums the idle gaps.
func (tr Trace) IdleTime() float64 {
	total := 0.0
	for _, g := range tr.Idle {
		total += g.Duration()
	}
	return total
}

// SegmentsFor returns the segments of a single task in time order.
func (tr Trace) SegmentsFor(id TaskID) []Segment {
	var out []Segment
	for _, s := range tr.Segments {
		if s.TaskID == id {
			out = append(out, s)
		}
	}
	return out
}
