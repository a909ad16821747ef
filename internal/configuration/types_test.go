package configuration

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratelproject/ratel-runner/internal/flux/machines"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate   func(c *RunnerConfig)
		numProbs int
	}{
		"defaults are valid": {
			mutate:   func(c *RunnerConfig) {},
			numProbs: 0,
		},
		"explicit machine": {
			mutate: func(c *RunnerConfig) {
				c.Machine = machines.Tioga
			},
			numProbs: 0,
		},
		"unknown machine": {
			mutate: func(c *RunnerConfig) {
				c.Machine = machines.Machine("sierra")
			},
			numProbs: 1,
		},
		"unknown gpu mode": {
			mutate: func(c *RunnerConfig) {
				c.GPUMode = machines.GPUMode("QPX")
			},
			numProbs: 1,
		},
		"negative restarts": {
			mutate: func(c *RunnerConfig) {
				c.Submission.MaxRestarts = -1
			},
			numProbs: 1,
		},
		"negative checkpoint interval": {
			mutate: func(c *RunnerConfig) {
				c.Submission.CheckpointInterval = -10
			},
			numProbs: 1,
		},
		"zero attempts": {
			mutate: func(c *RunnerConfig) {
				c.Submission.MaxAttempts = 0
			},
			numProbs: 1,
		},
		"problems aggregate": {
			mutate: func(c *RunnerConfig) {
				c.Machine = machines.Machine("sierra")
				c.Submission.MaxRestarts = -1
				c.Submission.MaxAttempts = 0
			},
			numProbs: 3,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			config := DefaultRunnerConfig()
			tc.mutate(&config)
			err := config.Validate()
			if tc.numProbs == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, tc.numProbs)
		})
	}
}
