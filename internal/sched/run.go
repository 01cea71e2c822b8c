// internal/sched/run.go

package sched

import "slices"

// Outcome is everything a single policy run produces.
type Outcome struct {
	Policy  Policy                    `json:"policy"`
	Quantum float64                   `json:"quantum,omitempty"`
	Tasks   []Task                    `json:"tasks"` // the snapshot the run saw
	Order   []TaskID                  `json:"order"` // completion order
	Results map[TaskID]ScheduleResult `json:"results"`
	Trace   Trace                     `json:"trace"`
	Metrics Metrics                   `json:"metrics"`
}

// ResultsInOrder returns the results following the snapshot order.
func (o *Outcome) ResultsInOrder() []ScheduleResult {
	out := make([]ScheduleResult, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		if res, ok := o.Results[t.ID]; ok {
			out = append(out, res)
		}
	}
	return out
}

// Run schedules tasks under policy. The quantum is only used by round-robin.
func Run(tasks []Task, policy Policy, quantum float64, opts ...Option) (*Outcome, error) {
	strategy, err := NewStrategy(policy, quantum, opts...)
	if err != nil {
		return nil, err
	}
	return RunStrategy(tasks, strategy, quantum)
}

// RunStrategy is Run with a prebuilt strategy.
func RunStrategy(tasks []Task, strategy Strategy, quantum float64) (*Outcome, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	if err := validateAll(tasks); err != nil {
		return nil, err
	}

	snapshot := slices.Clone(tasks)
	plan, err := strategy.Schedule(snapshot)
	if err != nil {
		return nil, err
	}

	var tr Trace
	if strategy.Policy().Preemptive() {
		tr = TraceFromHistory(plan.History)
	} else {
		tr = TraceFromResults(snapshot, plan.Results)
	}

	o := &Outcome{
		Policy:  strategy.Policy(),
		Tasks:   snapshot,
		Order:   plan.Order,
		Results: plan.Results,
		Trace:   tr,
		Metrics: ComputeMetrics(snapshot, plan.Results, tr),
	}
	if strategy.Policy() == RoundRobin {
		o.Quantum = quantum
	}
	return o, nil
}

// Compare runs every policy on the same tasks, in canonical policy order.
func Compare(tasks []Task, quantum float64, opts ...Option) ([]*Outcome, error) {
	out := make([]*Outcome, 0, len(Policies()))
	for _, p := range Policies() {
		o, err := Run(tasks, p, quantum, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func validateAll(tasks []Task) error {
	seen := make(map[TaskID]bool, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return &InvalidTaskError{TaskID: t.ID, Field: "id", Value: float64(t.ID), Reason: "is duplicated"}
		}
		seen[t.ID] = true
	}
	return nil
}
