package machines

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratelproject/ratel-runner/internal/common/fluxerrors"
)

func TestParseMachine(t *testing.T) {
	tests := map[string]Machine{
		"tuolumne": Tuolumne,
		"Tioga":    Tioga,
		"LASSEN":   Lassen,
	}
	for input, want := range tests {
		machine, err := ParseMachine(input)
		require.NoError(t, err)
		assert.Equal(t, want, machine)
	}

	_, err := ParseMachine("sierra")
	require.Error(t, err)
	var notFound *fluxerrors.ErrNotFound
	assert.True(t, errors.As(err, &notFound))
}

func TestParseGPUMode(t *testing.T) {
	mode, err := ParseGPUMode("cpx")
	require.NoError(t, err)
	assert.Equal(t, CPX, mode)

	_, err = ParseGPUMode("qpx")
	assert.Error(t, err)
}

func TestGetConfig(t *testing.T) {
	tests := map[string]struct {
		machine     Machine
		gpuMode     GPUMode
		gpusPerNode int
		ceedBackend string
	}{
		"tuolumne spx": {Tuolumne, SPX, 4, "/gpu/hip/gen"},
		"tuolumne cpx": {Tuolumne, CPX, 24, "/gpu/hip/gen"},
		"tuolumne tpx": {Tuolumne, TPX, 12, "/gpu/hip/gen"},
		"tioga":        {Tioga, SPX, 8, "/gpu/hip/gen"},
		"lassen":       {Lassen, SPX, 8, "/gpu/cuda/gen"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			config, err := GetConfig(tc.machine, tc.gpuMode)
			require.NoError(t, err)
			assert.Equal(t, tc.gpusPerNode, config.GPUsPerNode)
			assert.Equal(t, tc.ceedBackend, config.CeedBackend)
			assert.NotEmpty(t, config.Packages)
			assert.NotEmpty(t, config.Bank)
		})
	}

	_, err := GetConfig(Machine("sierra"), SPX)
	assert.Error(t, err)
}

func TestDetectFromHostname(t *testing.T) {
	tests := map[string]struct {
		machine Machine
		ok      bool
	}{
		"tuolumne1001": {Tuolumne, true},
		"tioga22":      {Tioga, true},
		"lassen708":    {Lassen, true},
		"login04":      {"", false},
	}
	for hostname, tc := range tests {
		machine, ok := detectFromHostname(hostname)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.machine, machine)
	}
}
