package cli

import (
	"os"

	"github.com/spf13/cobra"

	"ecosched/internal/job"
)

func newGenerateCmd() *cobra.Command {
	var (
		opts = job.DefaultGenOptions()
		out  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random but reproducible task set as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := job.Generate(opts)
			logger.Debug().Int("count", len(tasks)).Int64("seed", opts.Seed).Msg("task set generated")

			if out == "" || out == "-" {
				return job.WriteTasks(cmd.OutOrStdout(), tasks)
			}
			return writeFile(out, func(f *os.File) error { return job.WriteTasks(f, tasks) })
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", opts.Count, "Number of tasks")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "Random seed")
	cmd.Flags().Float64Var(&opts.MaxArrival, "max-arrival", opts.MaxArrival, "Latest arrival time")
	cmd.Flags().Float64Var(&opts.MaxBurst, "max-burst", opts.MaxBurst, "Longest burst")
	cmd.Flags().IntVar(&opts.MaxPriority, "max-priority", opts.MaxPriority, "Largest priority value")
	cmd.Flags().Float64Var(&opts.MaxEnergy, "max-energy", opts.MaxEnergy, "Largest energy intensity (W)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
