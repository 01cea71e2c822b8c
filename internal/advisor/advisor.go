// Package advisor is the boundary to scheduling advice. The engine hands an
// Advisor a serializable view of the task set and a question; how the
// answer is produced (a remote model, a human, a heuristic) is up to the
// implementation.
package advisor

import (
	"context"
	"encoding/json"

	"ecosched/internal/sched"
)

// DefaultQuestion is the question asked when the caller has none.
const DefaultQuestion = "Which scheduling algorithm (fcfs, sjf, priority, round-robin) best suits these tasks based on energy consumed?"

// Advisor answers a free-text scheduling question about a task set.
type Advisor interface {
	Advise(ctx context.Context, tasks []TaskView, question string) (string, error)
}

// TaskView is the opaque hand-off record for one task.
type TaskView struct {
	ID              int64   `json:"id"`
	ArrivalTime     float64 `json:"arrival_time"`
	ExecutionTime   float64 `json:"execution_time"`
	Priority        float64 `json:"priority"`
	EnergyIntensity float64 `json:"energy_intensity"`
	CPUDemand       float64 `json:"cpu_demand"`
}

// View converts tasks to their hand-off form, preserving order.
func View(tasks []sched.Task) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskView{
			ID:              int64(t.ID),
			ArrivalTime:     t.ArrivalTime,
			ExecutionTime:   t.ExecutionTime,
			Priority:        t.Priority,
			EnergyIntensity: t.EnergyIntensity,
			CPUDemand:       t.CPUDemand,
		})
	}
	return out
}

// Marshal serializes the task view as JSON.
func Marshal(tasks []sched.Task) ([]byte, error) {
	return json.Marshal(View(tasks))
}

// Tasks converts views back into engine tasks.
func Tasks(views []TaskView) []sched.Task {
	out := make([]sched.Task, 0, len(views))
	for _, v := range views {
		out = append(out, sched.Task{
			ID:              sched.TaskID(v.ID),
			ArrivalTime:     v.ArrivalTime,
			ExecutionTime:   v.ExecutionTime,
			Priority:        v.Priority,
			EnergyIntensity: v.EnergyIntensity,
			CPUDemand:       v.CPUDemand,
		})
	}
	return out
}
