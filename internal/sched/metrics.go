package sched

// Metrics summarizes a completed run.
//
// BusyTime is the total requested burst. Round-robin counts a task as done
// once less than Epsilon remains, so its makespan can fall short of BusyTime
// by up to Epsilon per task; IdleTime is floored at 0 and Utilization capped
// at 1 in that case. Per-task WaitingTime is left unclamped and may be as low
// as -Epsilon.
type Metrics struct {
	TotalEnergy   float64            `json:"total_energy"`
	BusyTime      float64            `json:"busy_time"`
	IdleTime      float64            `json:"idle_time"`
	Makespan      float64            `json:"makespan"`
	Utilization   float64            `json:"utilization"` // busy/makespan, 0..1
	AvgTurnaround float64            `json:"avg_turnaround"`
	AvgWaiting    float64            `json:"avg_waiting"`
	Throughput    float64            `json:"throughput"` // tasks per time unit
	EnergyByTask  map[TaskID]float64 `json:"energy_by_task"`
}

// TotalEnergy depends only on the work each task does, so it is the same for
// every policy.
func TotalEnergy(tasks []Task) float64 {
	total := 0.0
	for _, t := range tasks {
		total += t.Energy()
	}
	return total
}

// ComputeMetrics derives summary statistics from tasks, their results and
// the trace of the run.
func ComputeMetrics(tasks []Task, results map[TaskID]ScheduleResult, tr Trace) Metrics {
	m := Metrics{
		Makespan:     tr.Makespan,
		EnergyByTask: make(map[TaskID]float64, len(tasks)),
	}

	for _, t := range tasks {
		m.EnergyByTask[t.ID] = t.Energy()
		m.TotalEnergy += t.Energy()
		m.BusyTime += t.ExecutionTime
	}

	if m.Makespan > 0 {
		m.Utilization = min(m.BusyTime/m.Makespan, 1)
		m.Throughput = float64(len(tasks)) / m.Makespan
	}
	m.IdleTime = max(m.Makespan-m.BusyTime, 0)

	// summed in task order so repeated runs are bitwise identical
	n := 0
	for _, t := range tasks {
		res, ok := results[t.ID]
		if !ok {
			continue
		}
		m.AvgTurnaround += res.TurnaroundTime
		m.AvgWaiting += res.WaitingTime
		n++
	}
	if n > 0 {
		m.AvgTurnaround /= float64(n)
		m.AvgWaiting /= float64(n)
	}
	return m
}
