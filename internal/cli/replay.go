package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecosched/internal/sched"
)

func newReplayCmd() *cobra.Command {
	var (
		tasksPath string
		policy    string
		quantum   float64
		tickMS    int
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a schedule as a paced event stream",
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

			tick := cfg.TickMS
			if cmd.Flags().Changed("tick-ms") {
				tick = tickMS
			}
			clock := sched.NewTickClock(tick)

			out := cmd.OutOrStdout()
			for ev := range clock.Replay(cmd.Context(), sched.Events(o)) {
				fmt.Fprintln(out, formatEvent(ev))
			}
			return cmd.Context().Err()
		},
	}

	cmd.Flags().StringVarP(&tasksPath, "tasks", "t", "", "Task set YAML file (required)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "fcfs", "Policy (fcfs, sjf, priority, rr)")
	cmd.Flags().Float64VarP(&quantum, "quantum", "q", 2, "Round-robin time quantum")
	cmd.Flags().IntVar(&tickMS, "tick-ms", 50, "Wall-clock milliseconds per simulated time unit")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}

func formatEvent(ev sched.StatusEvent) string {
	switch ev.Kind {
	case sched.StatusIdle:
		return fmt.Sprintf("t=%8.2f [%-8s]", ev.Time, ev.Kind)
	case sched.StatusPreempt, sched.StatusFinish:
		return fmt.Sprintf("t=%8.2f [%-8s] P%d ran=%.2f remaining=%.2f", ev.Time, ev.Kind, ev.TaskID, ev.Ran, ev.Remaining)
	default:
		return fmt.Sprintf("t=%8.2f [%-8s] P%d", ev.Time, ev.Kind, ev.TaskID)
	}
}
