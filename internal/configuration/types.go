package configuration

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ratelproject/ratel-runner/internal/common/fluxerrors"
	"github.com/ratelproject/ratel-runner/internal/flux/machines"
)

// RunnerConfig is the top level configuration for ratelctl.
type RunnerConfig struct {
	// RatelDir is the Ratel installation directory containing bin/ratel-quasistatic.
	RatelDir string
	// ScratchDir is the parallel filesystem directory simulation outputs are written to.
	ScratchDir string
	// OutputDir is where symlinks to scratch and scheduler output files are collected.
	OutputDir string
	// Machine names the cluster to submit to; detected from the hostname if empty.
	Machine machines.Machine
	// GPUMode is the GPU partitioning mode on machines that support it.
	GPUMode machines.GPUMode

	Submission SubmissionConfig
}

// SubmissionConfig controls batch submission and restart chains.
type SubmissionConfig struct {
	// FluxPath is the scheduler binary to invoke.
	FluxPath string
	// MaxAttempts is how many times a failed submission is retried.
	MaxAttempts uint
	// MaxRestarts bounds the length of a restart chain.
	MaxRestarts int
	// CheckpointInterval enables checkpointing every n steps when positive.
	CheckpointInterval int
	// AdditionalArgs is appended verbatim to the solver command line.
	AdditionalArgs string
}

// DefaultRunnerConfig returns the configuration used when no config file is
// present.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		GPUMode: machines.SPX,
		Submission: SubmissionConfig{
			FluxPath:    "flux",
			MaxAttempts: 3,
		},
	}
}

// Validate checks the configuration and returns all problems found,
// aggregated into a multierror.
func (c *RunnerConfig) Validate() error {
	var result *multierror.Error
	if c.Machine != "" {
		if _, err := machines.ParseMachine(c.Machine.String()); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.GPUMode != "" {
		if _, err := machines.ParseGPUMode(c.GPUMode.String()); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c.Submission.MaxRestarts < 0 {
		result = multierror.Append(result, errors.WithStack(&fluxerrors.ErrInvalidArgument{
			Name:    "submission.maxRestarts",
			Value:   c.Submission.MaxRestarts,
			Message: "must be non-negative",
		}))
	}
	if c.Submission.CheckpointInterval < 0 {
		result = multierror.Append(result, errors.WithStack(&fluxerrors.ErrInvalidArgument{
			Name:    "submission.checkpointInterval",
			Value:   c.Submission.CheckpointInterval,
			Message: "must be non-negative",
		}))
	}
	if c.Submission.MaxAttempts == 0 {
		result = multierror.Append(result, errors.WithStack(&fluxerrors.ErrInvalidArgument{
			Name:    "submission.maxAttempts",
			Value:   c.Submission.MaxAttempts,
			Message: "must be positive",
		}))
	}
	return result.ErrorOrNil()
}
