package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecosched/internal/advisor"
)

func newAdviseCmd() *cobra.Command {
	var (
		tasksPath string
		question  string
		quantum   float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Recommend a policy for a task set, or export the advisor hand-off",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadTasks(tasksPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := advisor.Marshal(tasks)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			q := cfg.Quantum
			if cmd.Flags().Changed("quantum") {
				q = quantum
			}
			var adv advisor.Advisor = advisor.Heuristic{Quantum: q}
			answer, err := adv.Advise(cmd.Context(), advisor.View(tasks), question)
			if err != nil {
				logger.Error().Err(err).Msg("advice failed")
				return err
			}
			fmt.Fprint(out, answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tasksPath, "tasks", "t", "", "Task set YAML file (required)")
	cmd.Flags().StringVar(&question, "question", advisor.DefaultQuestion, "Question for the advisor")
	cmd.Flags().Float64VarP(&quantum, "quantum", "q", 2, "Round-robin time quantum used in the comparison")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the serialized task view instead of advice")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}
