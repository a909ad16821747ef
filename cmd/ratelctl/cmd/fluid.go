package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ratelproject/ratel-runner/internal/ratelctl"
	"github.com/ratelproject/ratel-runner/pkg/fluid"
)

func fluidCmd(a *ratelctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fluid",
		Short: "Convert Flux job identifiers between their textual forms.",
	}
	cmd.PersistentFlags().String("format", "", "One of base58, hex, dothex, words, decimal.")
	cmd.AddCommand(
		fluidEncodeCmd(a),
		fluidDecodeCmd(a),
	)
	return cmd
}

func fluidEncodeCmd(a *ratelctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <id>",
		Short: "Print the textual forms of a decimal job identifier.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return a.FluidEncode(id, format)
		},
	}
	return cmd
}

func fluidDecodeCmd(a *ratelctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <fluid>",
		Short: "Parse a job identifier in any of its textual forms.",
		Long: `Parse a job identifier in any of its textual forms and print it in decimal.

The form is detected from the input's syntax; pass --format to bypass
detection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return a.FluidDecode(args[0], format)
		},
	}
	return cmd
}

// formatFlag returns the format the user asked for, or nil if they didn't.
func formatFlag(cmd *cobra.Command) (*fluid.Format, error) {
	name, err := cmd.Flags().GetString("format")
	if err != nil || name == "" {
		return nil, err
	}
	format, err := fluid.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return &format, nil
}
