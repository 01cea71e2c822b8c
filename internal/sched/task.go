// internal/sched/task.go

package sched

import "math"

// TaskID uniquely identifies a task inside a registry.
type TaskID int64

// Task is one schedulable unit of work. It is a value type and is never
// mutated once handed to a strategy; results live in ScheduleResult.
type Task struct {
	ID              TaskID  `yaml:"id" json:"id"`
	ArrivalTime     float64 `yaml:"arrival_time" json:"arrival_time"`
	ExecutionTime   float64 `yaml:"execution_time" json:"execution_time"`     // total CPU burst
	Priority        float64 `yaml:"priority" json:"priority"`                 // lower runs first
	EnergyIntensity float64 `yaml:"energy_intensity" json:"energy_intensity"` // power draw while running
	CPUDemand       float64 `yaml:"cpu_demand" json:"cpu_demand"`             // informational only
}

// NewTask builds a task and validates it.
func NewTask(id TaskID, arrival, execution, priority, energy, cpu float64) (Task, error) {
	t := Task{
		ID:              id,
		ArrivalTime:     arrival,
		ExecutionTime:   execution,
		Priority:        priority,
		EnergyIntensity: energy,
		CPUDemand:       cpu,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks the ingestion constraints of a task.
func (t Task) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"arrival_time", t.ArrivalTime},
		{"execution_time", t.ExecutionTime},
		{"priority", t.Priority},
		{"energy_intensity", t.EnergyIntensity},
		{"cpu_demand", t.CPUDemand},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidTaskError{TaskID: t.ID, Field: f.name, Value: f.value, Reason: "must be a finite number"}
		}
	}

	switch {
	case t.ExecutionTime <= 0:
		return &InvalidTaskError{TaskID: t.ID, Field: "execution_time", Value: t.ExecutionTime, Reason: "must be > 0"}
	case t.ArrivalTime < 0:
		return &InvalidTaskError{TaskID: t.ID, Field: "arrival_time", Value: t.ArrivalTime, Reason: "must be >= 0"}
	case t.EnergyIntensity < 0:
		return &InvalidTaskError{TaskID: t.ID, Field: "energy_intensity", Value: t.EnergyIntensity, Reason: "must be >= 0"}
	case t.CPUDemand < 0:
		return &InvalidTaskError{TaskID: t.ID, Field: "cpu_demand", Value: t.CPUDemand, Reason: "must be >= 0"}
	}
	return nil
}

// Energy is the energy a task consumes over its whole burst.
func (t Task) Energy() float64 { return t.ExecutionTime * t.EnergyIntensity }

// ScheduleResult holds the timing a strategy run produced for one task.
type ScheduleResult struct {
	TaskID         TaskID  `json:"task_id"`
	CompletionTime float64 `json:"completion_time"`
	TurnaroundTime float64 `json:"turnaround_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

// resultFor derives turnaround and waiting time from a completion time.
func resultFor(t Task, completion float64) ScheduleResult {
	turnaround := completion - t.ArrivalTime
	return ScheduleResult{
		TaskID:         t.ID,
		CompletionTime: completion,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - t.ExecutionTime,
	}
}
