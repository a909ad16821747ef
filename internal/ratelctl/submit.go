package ratelctl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ratelproject/ratel-runner/internal/flux"
	"github.com/ratelproject/ratel-runner/internal/flux/machines"
	"github.com/ratelproject/ratel-runner/pkg/fluid"
)

// Submit submits an existing batch script and prints the identifier of the
// submitted job.
func (a *App) Submit(ctx context.Context, scriptPath string) error {
	jobID, err := a.Params.Client.Submit(ctx, scriptPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Submitted job %s\n", fluid.Encode(jobID, fluid.Base58))
	return nil
}

// SubmitExperiment generates batch scripts for the named experiment and
// submits them. When checkpointing is enabled, up to MaxRestarts restart jobs
// are chained behind the initial submission, each continuing from the newest
// checkpoint of the job before it.
func (a *App) SubmitExperiment(ctx context.Context, name, optionsFile string, processes int) error {
	config := a.Params.Config

	machine := config.Machine
	if machine == "" {
		detected, ok := machines.Detect()
		if !ok {
			return errors.New("could not detect machine from hostname, please specify one")
		}
		machine = detected
		log.Infof("detected machine %s", machine)
	}

	spec := flux.ScriptSpec{
		JobName:            name,
		Machine:            machine,
		GPUMode:            config.GPUMode,
		Processes:          processes,
		RatelDir:           config.RatelDir,
		ScratchDir:         config.ScratchDir,
		OutputDir:          config.OutputDir,
		OptionsFile:        optionsFile,
		AdditionalArgs:     config.Submission.AdditionalArgs,
		CheckpointInterval: config.Submission.CheckpointInterval,
	}
	scriptsDir := filepath.Join(config.ScratchDir, "flux_scripts")
	generate := func(original, dependent *uint64) (string, error) {
		spec := spec
		spec.OriginalJobID = original
		spec.DependentJobID = dependent
		path, err := flux.WriteScript(spec, scriptsDir)
		if err != nil {
			return "", err
		}
		log.Infof("saved batch script %s", path)
		return path, nil
	}

	// Restarts only make sense when there are checkpoints to continue from.
	maxRestarts := 0
	if config.Submission.CheckpointInterval > 0 {
		maxRestarts = config.Submission.MaxRestarts
	}

	jobIDs, err := a.Params.Client.SubmitSeries(ctx, generate, maxRestarts)
	for _, id := range jobIDs {
		fmt.Fprintf(a.Out, "Submitted job %s\n", fluid.Encode(id, fluid.Base58))
	}
	return err
}
