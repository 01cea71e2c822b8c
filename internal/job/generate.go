package job

import (
	"math"
	"math/rand"

	"ecosched/internal/sched"
)

// GenOptions bounds a synthetic workload.
type GenOptions struct {
	Count       int
	Seed        int64
	MaxArrival  float64 // arrivals fall in [0, MaxArrival]
	MaxBurst    float64 // bursts fall in [MinBurst, MaxBurst]
	MaxPriority int     // integer priorities in [1, MaxPriority]
	MaxEnergy   float64 // watts
}

// MinBurst is the shortest burst Generate produces.
const MinBurst = 0.5

func DefaultGenOptions() GenOptions {
	return GenOptions{
		Count:       5,
		Seed:        1,
		MaxArrival:  10,
		MaxBurst:    8,
		MaxPriority: 5,
		MaxEnergy:   5,
	}
}

// Generate returns Count valid tasks with ids 1..Count. The same options
// always produce the same tasks.
func Generate(opts GenOptions) []sched.Task {
	def := DefaultGenOptions()
	if opts.MaxBurst < MinBurst {
		opts.MaxBurst = def.MaxBurst
	}
	if opts.MaxPriority <= 0 {
		opts.MaxPriority = def.MaxPriority
	}
	if opts.MaxArrival < 0 {
		opts.MaxArrival = 0
	}
	if opts.MaxEnergy < 0 {
		opts.MaxEnergy = 0
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	tasks := make([]sched.Task, 0, max(opts.Count, 0))
	for i := 1; i <= opts.Count; i++ {
		tasks = append(tasks, sched.Task{
			ID:              sched.TaskID(i),
			ArrivalTime:     round1(rng.Float64() * opts.MaxArrival),
			ExecutionTime:   math.Max(MinBurst, round1(MinBurst+rng.Float64()*(opts.MaxBurst-MinBurst))),
			Priority:        float64(1 + rng.Intn(opts.MaxPriority)),
			EnergyIntensity: round1(rng.Float64() * opts.MaxEnergy),
			CPUDemand:       round1(rng.Float64() * 100),
		})
	}
	return tasks
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
