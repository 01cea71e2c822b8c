package advisor

import (
	"context"
	"fmt"
	"strings"

	"ecosched/internal/sched"
)

// Heuristic is an offline Advisor. It simulates every policy and recommends
// the one with the lowest average waiting time, breaking ties on average
// turnaround and then canonical policy order. It ignores the question text.
type Heuristic struct {
	Quantum float64 // round-robin quantum used for the comparison
}

var _ Advisor = Heuristic{}

// Recommend returns the winning outcome and all outcomes it compared.
func (h Heuristic) Recommend(tasks []sched.Task) (*sched.Outcome, []*sched.Outcome, error) {
	outs, err := sched.Compare(tasks, h.Quantum)
	if err != nil {
		return nil, nil, err
	}

	best := outs[0]
	for _, o := range outs[1:] {
		switch {
		case o.Metrics.AvgWaiting < best.Metrics.AvgWaiting:
			best = o
		case o.Metrics.AvgWaiting == best.Metrics.AvgWaiting && o.Metrics.AvgTurnaround < best.Metrics.AvgTurnaround:
			best = o
		}
	}
	return best, outs, nil
}

func (h Heuristic) Advise(ctx context.Context, tasks []TaskView, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	best, outs, err := h.Recommend(Tasks(tasks))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recommended: %s (avg waiting %.2f, avg turnaround %.2f).\n",
		best.Policy, best.Metrics.AvgWaiting, best.Metrics.AvgTurnaround)
	fmt.Fprintf(&b, "Total energy is %.4f Wh under every policy; the choice only changes waiting and utilization.\n",
		best.Metrics.TotalEnergy)
	for _, o := range outs {
		fmt.Fprintf(&b, "- %s: waiting %.2f, turnaround %.2f, utilization %.1f%%\n",
			o.Policy, o.Metrics.AvgWaiting, o.Metrics.AvgTurnaround, o.Metrics.Utilization*100)
	}
	return b.String(), nil
}
