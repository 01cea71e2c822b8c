package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecosched/internal/job"
	"ecosched/internal/sched"
)

func newRunCmd() *cobra.Command {
	var (
		tasksPath string
		policy    string
		quantum   float64
		traceCSV  string
		eventsCSV string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a task set under one policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q, err := runSettings(cmd, policy, quantum)
			if err != nil {
				return err
			}
			s, err := loadScheduler(tasksPath, q)
			if err != nil {
				return err
			}
			o, err := s.Run(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderOutcome(out, o)

			if traceCSV != "" {
				if err := writeFile(traceCSV, func(f *os.File) error { return sched.WriteTraceCSV(f, o.Trace) }); err != nil {
					return err
				}
				logger.Info().Str("path", traceCSV).Msg("trace written")
			}
			if eventsCSV != "" {
				if err := writeFile(eventsCSV, func(f *os.File) error { return sched.WriteEventsCSV(f, sched.Events(o)) }); err != nil {
					return err
				}
				logger.Info().Str("path", eventsCSV).Msg("events written")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tasksPath, "tasks", "t", "", "Task set YAML file (required)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "fcfs", "Policy (fcfs, sjf, priority, rr)")
	cmd.Flags().Float64VarP(&quantum, "quantum", "q", 2, "Round-robin time quantum")
	cmd.Flags().StringVar(&traceCSV, "trace-csv", "", "Write the execution trace as CSV")
	cmd.Flags().StringVar(&eventsCSV, "events-csv", "", "Write the event stream as CSV")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}

func loadTasks(path string) ([]sched.Task, error) {
	if path == "-" {
		return job.ReadTasks(os.Stdin)
	}
	return job.LoadTasks(path)
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
