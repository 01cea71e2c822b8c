// internal/sched/roundrobin.go

package sched

import (
	"math"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Epsilon is the remaining-time threshold under which a round-robin task
// counts as finished.
const Epsilon = 0.001

// roundRobin is the only preemptive strategy. Its execution history is the
// trace.
type roundRobin struct {
	quantum   float64
	maxSlices int // optional ceiling override, 0 = derived
}

func (s *roundRobin) Policy() Policy { return RoundRobin }

func (s *roundRobin) Schedule(tasks []Task) (Plan, error) {
	// admission order: earlier arrivals first, ascending id within one instant
	pool := byArrival(tasks)

	remaining := make(map[TaskID]float64, len(pool))
	queued := make(map[TaskID]bool, len(pool))
	completed := make(map[TaskID]bool, len(pool))
	total := 0.0
	for _, t := range pool {
		remaining[t.ID] = t.ExecutionTime
		total += t.ExecutionTime
	}

	plan := Plan{
		Order:   make([]TaskID, 0, len(pool)),
		Results: make(map[TaskID]ScheduleResult, len(pool)),
	}

	queue := linkedlistqueue.New()
	clock := 0.0
	running := TaskID(0)
	hasRunning := false

	admit := func() {
		for _, t := range pool {
			if completed[t.ID] || queued[t.ID] || (hasRunning && t.ID == running) {
				continue
			}
			if t.ArrivalTime <= clock {
				queue.Enqueue(t)
				queued[t.ID] = true
			}
		}
	}

	limit := s.ceiling(total, len(pool))
	for iter := 0; len(plan.Order) < len(pool); iter++ {
		if iter >= limit {
			return Plan{}, &SchedulingError{Policy: RoundRobin, Limit: limit, Clock: clock}
		}

		admit()

		if queue.Empty() {
			next, ok := nextArrival(pool, completed, clock)
			if !ok {
				break
			}
			clock = next
			continue
		}

		v, _ := queue.Dequeue()
		t := v.(Task)
		queued[t.ID] = false
		running, hasRunning = t.ID, true

		slice := math.Min(s.quantum, remaining[t.ID])
		plan.History = append(plan.History, Segment{TaskID: t.ID, Start: clock, End: clock + slice})
		clock += slice
		remaining[t.ID] -= slice

		// peers that arrived during this slice go ahead of the preempted task
		admit()
		hasRunning = false

		if remaining[t.ID] <= Epsilon {
			completed[t.ID] = true
			plan.Order = append(plan.Order, t.ID)
			plan.Results[t.ID] = resultFor(t, clock)
			continue
		}
		queue.Enqueue(t)
		queued[t.ID] = true
	}

	if len(plan.Order) < len(pool) {
		return Plan{}, &SchedulingError{Policy: RoundRobin, Limit: limit, Clock: clock}
	}
	return plan, nil
}

// ceiling bounds the loop: every iteration either runs a slice or jumps to an
// arrival, and there are at most ceil(total/q)+n slices and n jumps.
func (s *roundRobin) ceiling(total float64, n int) int {
	slices := math.Ceil(total / s.quantum)
	limit := math.MaxInt32
	if bound := 2*(slices+float64(n)) + 1; bound < float64(limit) {
		limit = int(bound)
	}
	if s.maxSlices > 0 && s.maxSlices < limit {
		limit = s.maxSlices
	}
	return limit
}

// nextArrival returns the earliest arrival after clock among unfinished tasks.
func nextArrival(tasks []Task, completed map[TaskID]bool, clock float64) (float64, bool) {
	next, found := math.Inf(1), false
	for _, t := range tasks {
		if !completed[t.ID] && t.ArrivalTime > clock && t.ArrivalTime < next {
			next, found = t.ArrivalTime, true
		}
	}
	return next, found
}
