// Package machines holds the static per-cluster configuration used when
// generating and submitting batch scripts: scheduler banks and partitions,
// GPU counts, module loads and environment defines.
package machines

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ratelproject/ratel-runner/internal/common/fluxerrors"
)

// Machine identifies one of the clusters experiments can run on.
type Machine string

const (
	Tuolumne Machine = "tuolumne"
	Tioga    Machine = "tioga"
	Lassen   Machine = "lassen"
)

// ParseMachine converts a machine name into a Machine.
func ParseMachine(s string) (Machine, error) {
	switch Machine(strings.ToLower(s)) {
	case Tuolumne:
		return Tuolumne, nil
	case Tioga:
		return Tioga, nil
	case Lassen:
		return Lassen, nil
	default:
		return "", errors.WithStack(&fluxerrors.ErrNotFound{
			Type:  "machine",
			Value: s,
		})
	}
}

func (m Machine) String() string {
	return string(m)
}

// GPUMode is the MI300A partitioning mode on machines that support it.
type GPUMode string

const (
	SPX GPUMode = "SPX"
	CPX GPUMode = "CPX"
	TPX GPUMode = "TPX"
)

// ParseGPUMode converts a GPU mode name into a GPUMode.
func ParseGPUMode(s string) (GPUMode, error) {
	switch GPUMode(strings.ToUpper(s)) {
	case SPX:
		return SPX, nil
	case CPX:
		return CPX, nil
	case TPX:
		return TPX, nil
	default:
		return "", errors.WithStack(&fluxerrors.ErrNotFound{
			Type:  "GPU mode",
			Value: s,
		})
	}
}

func (m GPUMode) String() string {
	return string(m)
}

// Config is the scheduler-facing configuration of one machine.
type Config struct {
	GPUsPerNode        int
	Bank               string
	Partition          string
	MaxTime            string
	CeedBackend        string
	ParallelFilesystem string
	Packages           []string
	Defines            map[string]string
	FluxArgs           []string
}

// GetConfig returns the configuration for the given machine. The GPU mode
// only affects machines with partitionable GPUs; pass SPX when in doubt.
func GetConfig(machine Machine, gpuMode GPUMode) (Config, error) {
	switch machine {
	case Tuolumne:
		gpusPerNode := 4
		switch gpuMode {
		case CPX:
			gpusPerNode = 24
		case TPX:
			gpusPerNode = 12
		}
		return Config{
			GPUsPerNode:        gpusPerNode,
			Bank:               "uco",
			Partition:          "pbatch",
			MaxTime:            "12h",
			CeedBackend:        "/gpu/hip/gen",
			ParallelFilesystem: "/p/lustre5",
			Packages: []string{
				"PrgEnv-amd",
				"rocmcc/6.4.2-magic",
				"rocm/6.4.2",
				"cray-mpich/9.0.1",
				"craype-accel-amd-gfx942",
				"cray-python",
				"cray-libsci_acc",
				"cray-hdf5-parallel/1.14.3.7",
				"flux_wrappers",
			},
			Defines: map[string]string{
				"HSA_XNACK":                  "1",
				"MPICH_GPU_SUPPORT_ENABLED":  "1",
				"MPICH_SMP_SINGLE_COPY_MODE": "XPMEM",
			},
			FluxArgs: []string{
				"--setattr=gpumode=" + gpuMode.String(),
				"--conf=resource.rediscover=true",
			},
		}, nil
	case Tioga:
		return Config{
			GPUsPerNode:        8,
			Bank:               "uco",
			Partition:          "pdebug",
			MaxTime:            "12h",
			CeedBackend:        "/gpu/hip/gen",
			ParallelFilesystem: "/p/lustre2",
			Packages: []string{
				"rocmcc/6.4.0-cce-19.0.0d-magic",
				"rocm/6.4.0",
				"craype-accel-amd-gfx90a",
				"cray-python",
				"cray-libsci_acc",
				"cray-hdf5-parallel/1.14.3.5",
				"flux_wrappers",
				"cray-mpich/8.1.32",
			},
			Defines: map[string]string{
				"HSA_XNACK":                 "1",
				"MPICH_GPU_SUPPORT_ENABLED": "1",
			},
		}, nil
	case Lassen:
		return Config{
			GPUsPerNode:        8,
			Bank:               "uco",
			Partition:          "pdebug",
			MaxTime:            "12h",
			CeedBackend:        "/gpu/cuda/gen",
			ParallelFilesystem: "/p/gpfs1",
			Packages: []string{
				"clang/ibm-18.1.8-cuda-11.8.0-gcc-11.2.1",
				"cuda/11.8.0",
				"base-gcc/11.2.1",
				"essl",
				"lapack",
				"python/3.11.5",
			},
		}, nil
	default:
		return Config{}, errors.WithStack(&fluxerrors.ErrNotFound{
			Type:  "machine",
			Value: machine.String(),
		})
	}
}

// Detect infers the current machine from the hostname prefix. The second
// return value reports whether detection succeeded.
func Detect() (Machine, bool) {
	hostname, err := os.Hostname()
	if err != nil {
		log.WithError(err).Warn("could not read hostname for machine detection")
		return "", false
	}
	return detectFromHostname(hostname)
}

func detectFromHostname(hostname string) (Machine, bool) {
	for _, machine := range []Machine{Tuolumne, Tioga, Lassen} {
		if strings.HasPrefix(hostname, machine.String()) {
			return machine, true
		}
	}
	return "", false
}
