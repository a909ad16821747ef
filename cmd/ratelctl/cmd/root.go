package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ratelproject/ratel-runner/internal/common"
	"github.com/ratelproject/ratel-runner/internal/ratelctl"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratelctl",
		Short: "ratelctl runs Ratel experiments on Flux-scheduled clusters.",
		Long: `ratelctl runs Ratel experiments on Flux-scheduled clusters.

Persistent config can be saved in a ratelctl.yaml file so it doesn't have to
be specified every command, e.g.:

rateldir: /usr/workspace/ratel
scratchdir: /p/lustre2/user/ratel-scratch
machine: tioga
submission:
  checkpointinterval: 10
  maxrestarts: 3

The directory containing this file can be passed in using the --config
argument. If not provided, the current directory is used.`,
	}

	cmd.PersistentFlags().String("config", ".", "Directory containing a ratelctl.yaml config file.")

	cmd.AddCommand(
		fluidCmd(ratelctl.New()),
		submitCmd(ratelctl.New()),
		runCmd(ratelctl.New()),
		versionCmd(ratelctl.New()),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initParams loads the config file on top of the default parameters and
// propagates submission settings to the scheduler client.
func initParams(cmd *cobra.Command, params *ratelctl.Params) error {
	configDir, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := common.LoadConfig(params.Config, configDir); err != nil {
		return err
	}
	params.Client.FluxPath = params.Config.Submission.FluxPath
	params.Client.Attempts = params.Config.Submission.MaxAttempts
	return nil
}
