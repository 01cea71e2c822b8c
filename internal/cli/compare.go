package cli

import (
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		tasksPath string
		quantum   float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every policy on a task set and compare summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := cfg.Quantum
			if cmd.Flags().Changed("quantum") {
				q = quantum
			}
			s, err := loadScheduler(tasksPath, q)
			if err != nil {
				return err
			}
			outs, err := s.Compare()
			if err != nil {
				return err
			}
			renderComparison(cmd.OutOrStdout(), outs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tasksPath, "tasks", "t", "", "Task set YAML file (required)")
	cmd.Flags().Float64VarP(&quantum, "quantum", "q", 2, "Round-robin time quantum")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}
