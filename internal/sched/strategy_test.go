package sched

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeTasks is the shared workload: bursts 5, 3, 8 arriving at 0, 1, 2.
func threeTasks() []Task {
	return []Task{
		{ID: 1, ArrivalTime: 0, ExecutionTime: 5, Priority: 3, EnergyIntensity: 2},
		{ID: 2, ArrivalTime: 1, ExecutionTime: 3, Priority: 2, EnergyIntensity: 2},
		{ID: 3, ArrivalTime: 2, ExecutionTime: 8, Priority: 1, EnergyIntensity: 3},
	}
}

func completions(o *Outcome) map[TaskID]float64 {
	out := make(map[TaskID]float64, len(o.Results))
	for id, res := range o.Results {
		out[id] = res.CompletionTime
	}
	return out
}

func TestFCFSScenario(t *testing.T) {
	o, err := Run(threeTasks(), FCFS, 0)
	require.NoError(t, err)

	want := []ScheduleResult{
		{TaskID: 1, CompletionTime: 5, TurnaroundTime: 5, WaitingTime: 0},
		{TaskID: 2, CompletionTime: 8, TurnaroundTime: 7, WaitingTime: 4},
		{TaskID: 3, CompletionTime: 16, TurnaroundTime: 14, WaitingTime: 6},
	}
	assert.Equal(t, want, o.ResultsInOrder())
	assert.Equal(t, []TaskID{1, 2, 3}, o.Order)
	assert.Equal(t, 16.0, o.Trace.Makespan)
	assert.Empty(t, o.Trace.Idle)
}

func TestSJFScenario(t *testing.T) {
	o, err := Run(threeTasks(), SJF, 0)
	require.NoError(t, err)

	assert.Equal(t, []TaskID{1, 2, 3}, o.Order)
	assert.Equal(t, map[TaskID]float64{1: 5, 2: 8, 3: 16}, completions(o))
}

func TestSJFPicksShortestAvailable(t *testing.T) {
	tasks := []Task{
		{ID: 1, ArrivalTime: 0, ExecutionTime: 4},
		{ID: 2, ArrivalTime: 1, ExecutionTime: 6},
		{ID: 3, ArrivalTime: 2, ExecutionTime: 1},
	}
	o, err := Run(tasks, SJF, 0)
	require.NoError(t, err)

	assert.Equal(t, []TaskID{1, 3, 2}, o.Order)
	assert.Equal(t, map[TaskID]float64{1: 4, 3: 5, 2: 11}, completions(o))
}

func TestPriorityScenario(t *testing.T) {
	o, err := Run(threeTasks(), Priority, 0)
	require.NoError(t, err)

	// only task 1 is available at t=0; then priority 1 (task 3) beats priority 2
	assert.Equal(t, []TaskID{1, 3, 2}, o.Order)
	assert.Equal(t, map[TaskID]float64{1: 5, 3: 13, 2: 16}, completions(o))
}

func TestTieBreakByArrivalThenID(t *testing.T) {
	tasks := []Task{
		{ID: 7, ArrivalTime: 0, ExecutionTime: 2, Priority: 1},
		{ID: 4, ArrivalTime: 0, ExecutionTime: 2, Priority: 1},
		{ID: 5, ArrivalTime: 1, ExecutionTime: 2, Priority: 1},
		{ID: 2, ArrivalTime: 1.5, ExecutionTime: 2, Priority: 1},
	}

	for _, p := range []Policy{FCFS, SJF, Priority} {
		t.Run(p.String(), func(t *testing.T) {
			o, err := Run(tasks, p, 0)
			require.NoError(t, err)
			assert.Equal(t, []TaskID{4, 7, 5, 2}, o.Order)
		})
	}
}

func TestRoundRobinScenario(t *testing.T) {
	o, err := Run(threeTasks(), RoundRobin, 2)
	require.NoError(t, err)

	want := []Segment{
		{TaskID: 1, Start: 0, End: 2},
		{TaskID: 2, Start: 2, End: 4},
		{TaskID: 3, Start: 4, End: 6},
		{TaskID: 1, Start: 6, End: 8},
		{TaskID: 2, Start: 8, End: 9},
		{TaskID: 3, Start: 9, End: 11},
		{TaskID: 1, Start: 11, End: 12},
		{TaskID: 3, Start: 12, End: 14},
		{TaskID: 3, Start: 14, End: 16},
	}
	assert.Equal(t, want, o.Trace.Segments)
	assert.Empty(t, o.Trace.Idle)
	assert.Equal(t, []TaskID{2, 1, 3}, o.Order)
	assert.Equal(t, map[TaskID]float64{1: 12, 2: 9, 3: 16}, completions(o))
	assert.Equal(t, 2.0, o.Quantum)

	assert.InDelta(t, 16.0, o.Trace.BusyTime(), 1e-9)
	assert.InDelta(t, o.Metrics.BusyTime, o.Trace.BusyTime(), 1e-9)
}

func TestRoundRobinIdleGaps(t *testing.T) {
	tasks := []Task{
		{ID: 1, ArrivalTime: 2, ExecutionTime: 1},
		{ID: 2, ArrivalTime: 5, ExecutionTime: 2},
	}
	o, err := Run(tasks, RoundRobin, 1)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		{TaskID: 1, Start: 2, End: 3},
		{TaskID: 2, Start: 5, End: 6},
		{TaskID: 2, Start: 6, End: 7},
	}, o.Trace.Segments)
	assert.Equal(t, []Gap{{Start: 0, End: 2}, {Start: 3, End: 5}}, o.Trace.Idle)
	assert.Equal(t, 7.0, o.Trace.Makespan)
}

func TestRoundRobinArrivalsGoBeforePreemptedTask(t *testing.T) {
	tasks := []Task{
		{ID: 1, ArrivalTime: 0, ExecutionTime: 4},
		{ID: 2, ArrivalTime: 1, ExecutionTime: 1},
	}
	o, err := Run(tasks, RoundRobin, 2)
	require.NoError(t, err)

	require.Len(t, o.Trace.Segments, 3)
	assert.Equal(t, TaskID(2), o.Trace.Segments[1].TaskID)
	assert.Equal(t, map[TaskID]float64{1: 5, 2: 3}, completions(o))
}

func TestRoundRobinEpsilonCompletion(t *testing.T) {
	tasks := []Task{{ID: 1, ArrivalTime: 0, ExecutionTime: 2.0005}}
	o, err := Run(tasks, RoundRobin, 2)
	require.NoError(t, err)

	require.Len(t, o.Trace.Segments, 1)
	assert.Equal(t, 2.0, o.Results[1].CompletionTime)
}

func TestRoundRobinLargeQuantumMatchesFCFS(t *testing.T) {
	sets := map[string][]Task{
		"scenario": threeTasks(),
		"unordered ids": {
			{ID: 1, ArrivalTime: 0, ExecutionTime: 10},
			{ID: 3, ArrivalTime: 2, ExecutionTime: 1},
			{ID: 2, ArrivalTime: 5, ExecutionTime: 2},
			{ID: 9, ArrivalTime: 20, ExecutionTime: 3},
		},
		"simultaneous": {
			{ID: 5, ArrivalTime: 1, ExecutionTime: 2},
			{ID: 2, ArrivalTime: 1, ExecutionTime: 4},
			{ID: 8, ArrivalTime: 1, ExecutionTime: 1},
		},
	}

	for name, tasks := range sets {
		t.Run(name, func(t *testing.T) {
			maxBurst := 0.0
			for _, task := range tasks {
				maxBurst = math.Max(maxBurst, task.ExecutionTime)
			}

			fcfs, err := Run(tasks, FCFS, 0)
			require.NoError(t, err)
			rr, err := Run(tasks, RoundRobin, maxBurst)
			require.NoError(t, err)

			assert.Equal(t, fcfs.Order, rr.Order)
			assert.Equal(t, completions(fcfs), completions(rr))
			assert.Equal(t, fcfs.Trace.Segments, rr.Trace.Segments)
		})
	}
}

func TestInvariantsHoldForAllPolicies(t *testing.T) {
	tasks := []Task{
		{ID: 1, ArrivalTime: 0.5, ExecutionTime: 2.25, Priority: 2, EnergyIntensity: 1.5},
		{ID: 2, ArrivalTime: 0, ExecutionTime: 6, Priority: 5, EnergyIntensity: 0.5},
		{ID: 3, ArrivalTime: 9, ExecutionTime: 1.5, Priority: 1, EnergyIntensity: 3},
		{ID: 4, ArrivalTime: 3.3, ExecutionTime: 0.7, Priority: 4, EnergyIntensity: 2},
		{ID: 5, ArrivalTime: 30, ExecutionTime: 4, Priority: 3, EnergyIntensity: 1},
	}

	for _, p := range Policies() {
		t.Run(p.String(), func(t *testing.T) {
			o, err := Run(tasks, p, 1.25)
			require.NoError(t, err)
			require.Len(t, o.Results, len(tasks))

			for _, task := range tasks {
				res := o.Results[task.ID]
				assert.InDelta(t, res.TurnaroundTime-task.ExecutionTime, res.WaitingTime, 1e-9)
				assert.GreaterOrEqual(t, res.TurnaroundTime, task.ExecutionTime-Epsilon)
				assert.GreaterOrEqual(t, res.WaitingTime, -Epsilon)
			}

			m := o.Metrics
			assert.InDelta(t, m.Makespan, m.BusyTime+m.IdleTime, 1e-9)
			assert.InDelta(t, m.IdleTime, o.Trace.IdleTime(), 1e-9)
			for _, seg := range o.Trace.Segments {
				assert.Greater(t, seg.Duration(), 0.0)
			}
		})
	}
}

func TestEnergyIsPolicyIndependent(t *testing.T) {
	var energies []float64
	for _, p := range Policies() {
		o, err := Run(threeTasks(), p, 2)
		require.NoError(t, err)
		energies = append(energies, o.Metrics.TotalEnergy)
	}
	for _, e := range energies {
		assert.Equal(t, 40.0, e)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	tasks := []Task{
		{ID: 1, ArrivalTime: 0.1, ExecutionTime: 0.3, EnergyIntensity: 0.7},
		{ID: 2, ArrivalTime: 0.2, ExecutionTime: 0.7, EnergyIntensity: 0.1},
		{ID: 3, ArrivalTime: 0.3, ExecutionTime: 1.1, EnergyIntensity: 0.3},
	}
	for _, p := range Policies() {
		a, err := Run(tasks, p, 0.2)
		require.NoError(t, err)
		b, err := Run(tasks, p, 0.2)
		require.NoError(t, err)
		assert.Equal(t, a, b, p.String())
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: 3, ArrivalTime: 2, ExecutionTime: 1},
		{ID: 1, ArrivalTime: 0, ExecutionTime: 1},
	}
	before := append([]Task(nil), tasks...)

	o, err := Run(tasks, SJF, 0)
	require.NoError(t, err)
	assert.Equal(t, before, tasks)

	tasks[0].ExecutionTime = 99
	assert.Equal(t, 1.0, o.Tasks[0].ExecutionTime)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(nil, FCFS, 0)
	assert.ErrorIs(t, err, ErrNoTasks)

	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = Run(threeTasks(), RoundRobin, q)
		var pe *InvalidParameterError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "time_quantum", pe.Name)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}

	_, err = Run([]Task{{ID: 1, ExecutionTime: 0}}, FCFS, 0)
	assert.ErrorIs(t, err, ErrInvalidTask)

	_, err = Run([]Task{{ID: 1, ExecutionTime: 1}, {ID: 1, ExecutionTime: 2}}, FCFS, 0)
	var te *InvalidTaskError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "id", te.Field)
}

func TestRoundRobinCeiling(t *testing.T) {
	tasks := []Task{{ID: 1, ExecutionTime: 10}}
	_, err := Run(tasks, RoundRobin, 1, WithMaxSlices(3))

	var se *SchedulingError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Limit)
	assert.True(t, errors.Is(err, ErrScheduling))

	_, err = Run(tasks, RoundRobin, 1, WithMaxSlices(100))
	assert.NoError(t, err)
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"fcfs":        FCFS,
		"SJF":         SJF,
		" priority ":  Priority,
		"rr":          RoundRobin,
		"Round-Robin": RoundRobin,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParsePolicy("lottery")
	assert.Error(t, err)
}

func TestCompareOrder(t *testing.T) {
	outs, err := Compare(threeTasks(), 2)
	require.NoError(t, err)
	require.Len(t, outs, 4)
	for i, p := range Policies() {
		assert.Equal(t, p, outs[i].Policy)
	}
}
