// Package flux wraps the Flux scheduler's command line interface: it
// generates batch scripts, submits them, and parses the job identifiers the
// scheduler prints back. It is the only place that calls the scheduler; the
// identifiers it handles are converted with pkg/fluid.
package flux

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ratelproject/ratel-runner/internal/common/fluxerrors"
	"github.com/ratelproject/ratel-runner/pkg/fluid"
)

// Client submits batch scripts to the Flux scheduler.
type Client struct {
	// FluxPath is the scheduler binary to invoke. Defaults to "flux" on PATH.
	FluxPath string
	// Attempts is how many times a submission is tried before giving up.
	Attempts uint

	// Stubbable for testing.
	runCmd func(*exec.Cmd) error
}

// NewClient returns a client with default settings.
func NewClient() *Client {
	return &Client{
		FluxPath: "flux",
		Attempts: 3,
		runCmd:   (*exec.Cmd).Run,
	}
}

// Submit runs flux batch on the given script and returns the job identifier
// the scheduler printed. Failed submissions are retried up to c.Attempts
// times; a submission that succeeds but prints an unparseable identifier is
// never retried, since parse failures are deterministic.
func (c *Client) Submit(ctx context.Context, scriptPath string) (uint64, error) {
	var jobID uint64
	err := retry.Do(
		func() error {
			var stdout, stderr bytes.Buffer
			cmd := exec.CommandContext(ctx, c.FluxPath, "batch", scriptPath)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			log.Infof("submitting job: %s batch %s", c.FluxPath, scriptPath)
			if err := c.runCmd(cmd); err != nil {
				return errors.WithStack(&fluxerrors.ErrSubmitFailed{
					Script:  scriptPath,
					Stderr:  strings.TrimSpace(stderr.String()),
					Message: err.Error(),
				})
			}
			id, err := fluid.Decode(strings.TrimSpace(stdout.String()))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			jobID = id
			return nil
		},
		retry.Attempts(c.Attempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return 0, err
	}
	log.WithField("jobId", fluid.Encode(jobID, fluid.Base58)).Info("job submitted")
	return jobID, nil
}

// ScriptGenerator produces the batch script for one link of a restart chain.
// original and dependent are nil for the initial submission; on restarts,
// original is the first job of the chain and dependent the previous one.
type ScriptGenerator func(original, dependent *uint64) (string, error)

// SubmitSeries submits an initial job followed by up to maxRestarts restart
// jobs, each gated on the previous job in the chain. It returns the
// identifiers of all submitted jobs, including any submitted before an error
// occurred.
func (c *Client) SubmitSeries(ctx context.Context, generate ScriptGenerator, maxRestarts int) ([]uint64, error) {
	scriptPath, err := generate(nil, nil)
	if err != nil {
		return nil, err
	}
	original, err := c.Submit(ctx, scriptPath)
	if err != nil {
		return nil, err
	}

	jobIDs := []uint64{original}
	previous := original
	for i := 0; i < maxRestarts; i++ {
		log.Infof("generating restart %d of %d", i+1, maxRestarts)
		scriptPath, err := generate(&original, &previous)
		if err != nil {
			return jobIDs, err
		}
		id, err := c.Submit(ctx, scriptPath)
		if err != nil {
			return jobIDs, err
		}
		jobIDs = append(jobIDs, id)
		previous = id
	}
	return jobIDs, nil
}
