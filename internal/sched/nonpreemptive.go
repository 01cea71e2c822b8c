// internal/sched/nonpreemptive.go

package sched

import (
	"cmp"
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// nonPreemptive runs the selected task to completion. FCFS, SJF and Priority
// differ only in the selection key.
type nonPreemptive struct {
	policy Policy
	key    func(Task) float64
}

func (s *nonPreemptive) Policy() Policy { return s.policy }

func (s *nonPreemptive) Schedule(tasks []Task) (Plan, error) {
	pending := byArrival(tasks)
	plan := Plan{
		Order:   make([]TaskID, 0, len(pending)),
		Results: make(map[TaskID]ScheduleResult, len(pending)),
		History: make([]Segment, 0, len(pending)),
	}

	ready := redblacktree.NewWith(compareReady)
	clock := 0.0
	next := 0 // index of the first task in pending that has not been admitted

	for next < len(pending) || !ready.Empty() {
		for next < len(pending) && pending[next].ArrivalTime <= clock {
			t := pending[next]
			ready.Put(readyKey{key: s.key(t), arrival: t.ArrivalTime, id: t.ID}, t)
			next++
		}

		// idle: jump to the next arrival
		if ready.Empty() {
			clock = pending[next].ArrivalTime
			continue
		}

		node := ready.Left()
		t := node.Value.(Task)
		ready.Remove(node.Key)

		start := clock
		clock += t.ExecutionTime
		plan.Order = append(plan.Order, t.ID)
		plan.Results[t.ID] = resultFor(t, clock)
		plan.History = append(plan.History, Segment{TaskID: t.ID, Start: start, End: clock})
	}
	return plan, nil
}

// readyKey orders the ready set by policy key, then arrival, then id.
type readyKey struct {
	key     float64
	arrival float64
	id      TaskID
}

func compareReady(a, b any) int {
	ka, kb := a.(readyKey), b.(readyKey)
	if c := cmp.Compare(ka.key, kb.key); c != 0 {
		return c
	}
	if c := cmp.Compare(ka.arrival, kb.arrival); c != 0 {
		return c
	}
	return cmp.Compare(ka.id, kb.id)
}

// byArrival returns a copy of tasks sorted by (arrival, id).
func byArrival(tasks []Task) []Task {
	out := slices.Clone(tasks)
	slices.SortFunc(out, func(a, b Task) int {
		if c := cmp.Compare(a.ArrivalTime, b.ArrivalTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
