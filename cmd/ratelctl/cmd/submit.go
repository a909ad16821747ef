package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ratelproject/ratel-runner/internal/ratelctl"
)

func submitCmd(a *ratelctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit ./path/to/script.sh",
		Short: "Submit an existing batch script to Flux.",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Submit(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runCmd(a *ratelctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <experiment-name>",
		Short: "Generate batch scripts for an experiment and submit them.",
		Long: `Generate batch scripts for an experiment and submit them to Flux.

When checkpointing is enabled, restart jobs are chained behind the initial
submission, each gated on the job before it and continuing from its newest
checkpoint.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			optionsFile, err := cmd.Flags().GetString("options-file")
			if err != nil {
				return err
			}
			processes, err := cmd.Flags().GetInt("processes")
			if err != nil {
				return err
			}
			return a.SubmitExperiment(cmd.Context(), args[0], optionsFile, processes)
		},
	}
	cmd.Flags().String("options-file", "", "Ratel options file for the experiment.")
	cmd.Flags().Int("processes", 1, "Number of MPI processes, one per GPU.")
	if err := cmd.MarkFlagRequired("options-file"); err != nil {
		panic(err)
	}
	return cmd
}
