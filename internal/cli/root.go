package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ecosched/internal/logging"
	"ecosched/internal/sched"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    sched.Config
	logger zerolog.Logger
)

// NewRootCmd creates the root cobra command for the ecosched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ecosched",
		Short: "Energy-aware CPU scheduling simulator",
		Long:  "ecosched simulates FCFS, SJF, Priority and Round-Robin scheduling over a task set and reports timing, timeline and energy.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = sched.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = flagLogFormat
			}
			logger = logging.NewWithWriter(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "ecosched.yaml", "Config file (missing file = defaults)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format (console, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newReplayCmd(),
		newGenerateCmd(),
		newAdviseCmd(),
	)
	return root
}

// runSettings resolves policy and quantum from config and command flags.
func runSettings(cmd *cobra.Command, policy string, quantum float64) (sched.Policy, float64, error) {
	p := cfg.Policy
	if cmd.Flags().Changed("policy") {
		var err error
		if p, err = sched.ParsePolicy(policy); err != nil {
			return 0, 0, err
		}
	}

	q := cfg.Quantum
	if cmd.Flags().Changed("quantum") {
		q = quantum
	}
	return p, q, nil
}

// loadScheduler builds a scheduler holding the tasks in path.
func loadScheduler(path string, q float64) (*sched.Scheduler, error) {
	tasks, err := loadTasks(path)
	if err != nil {
		return nil, err
	}
	c := cfg
	c.Quantum = q
	s := sched.New(c, logger)
	if err := s.AddAll(tasks); err != nil {
		return nil, err
	}
	return s, nil
}
