package flux

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ratelproject/ratel-runner/internal/flux/machines"
	"github.com/ratelproject/ratel-runner/pkg/fluid"
)

// ScriptSpec describes one batch script to generate.
type ScriptSpec struct {
	JobName            string
	Machine            machines.Machine
	GPUMode            machines.GPUMode
	Processes          int
	MaxTime            string // overrides the machine default if non-empty
	RatelDir           string
	ScratchDir         string
	OutputDir          string
	OptionsFile        string
	AdditionalArgs     string
	CheckpointInterval int

	// Set on restart submissions. OriginalJobID keys the scratch directory of
	// the job being continued; DependentJobID gates the restart behind the
	// previous job in the chain. If only OriginalJobID is set, the restart
	// depends on the original job.
	OriginalJobID  *uint64
	DependentJobID *uint64
}

type scriptData struct {
	JobName     string
	Nodes       int
	Tasks       int
	Processes   int
	MaxTime     string
	Partition   string
	Bank        string
	OutputDir   string
	Dependency  string
	FluxArgs    []string
	Packages    []string
	Defines     map[string]string
	Scratch     string
	OptionsFile string
	Restart     bool
	Command     string
}

var batchScriptTemplate = template.Must(template.New("batch").Parse(`#!/bin/bash

#flux: -N {{.Nodes}}
#flux: -n {{.Tasks}} # 1 proc per gpu, may be larger than necessary, but needed for binding
#flux: -x
#flux: -t {{.MaxTime}}
#flux: -q {{.Partition}}
#flux: --output={{.OutputDir}}/flux_output/{{.JobName}}_{{"{{id}}"}}.txt
#flux: --job-name={{.JobName}}
#flux: -B {{.Bank}}
#flux: --setattr=thp=always # Transparent Huge Pages
#flux: -l # Add task rank prefixes to each line of output.
{{- if .Dependency}}
#flux: --dependency=afterany:{{.Dependency}}
{{- end}}
{{- range .FluxArgs}}
#flux: {{.}}
{{- end}}

module reset
{{- range .Packages}}
module load {{.}}
{{- end}}
module list

JOB_ID=$(echo $CENTER_JOB_ID | cut -d'-' -f2)
echo "Job ID = $JOB_ID"
echo "Flux Resources = $(flux resource info)"

{{- range $key, $value := .Defines}}
export {{$key}}={{$value}}
{{- end}}
ulimit -c unlimited
ulimit -s unlimited

export SCRATCH="{{.Scratch}}"
echo "Scratch = $SCRATCH"
mkdir -p "$SCRATCH"
cd "$SCRATCH"
cp "{{.OptionsFile}}" "$SCRATCH/options.yml"
{{- if .Restart}}

newest_file=$(find . -maxdepth 1 -name 'checkpoint*.bin' -type f -printf '%T@ %p\n' | sort -nr | head -n 1 | cut -d' ' -f2-)
[[ -f "$newest_file" ]] || exit 1
echo "Using checkpoint file: $newest_file"
{{- end}}

echo "Starting simulation at $(date)"
flux run -N{{.Nodes}} -n{{.Processes}} -x --verbose -l --setopt=mpibind=verbose:1 \
  {{.Command}} >> "$SCRATCH/run.log" 2>&1
echo "Simulation finished at $(date)"
`))

// Generate renders the batch script described by spec. Restart scripts embed
// the previous job's identifier in the dependency directive and re-use the
// original job's scratch directory.
func Generate(spec ScriptSpec) (string, error) {
	config, err := machines.GetConfig(spec.Machine, spec.GPUMode)
	if err != nil {
		return "", err
	}
	if spec.Processes <= 0 {
		return "", errors.Errorf("cannot generate script for %d processes", spec.Processes)
	}

	restart := spec.OriginalJobID != nil
	if restart && spec.CheckpointInterval <= 0 {
		log.Warn("generating restart script, but checkpointing is disabled; you probably meant to set a checkpoint interval")
	}
	dependent := spec.DependentJobID
	if restart && dependent == nil {
		// Assume the original job is the job we depend on.
		dependent = spec.OriginalJobID
	}

	// One process per GPU, rounded up to full nodes.
	nodes := (spec.Processes + config.GPUsPerNode - 1) / config.GPUsPerNode
	tasks := nodes * config.GPUsPerNode

	maxTime := spec.MaxTime
	if maxTime == "" {
		maxTime = config.MaxTime
	}

	args := spec.AdditionalArgs
	if spec.CheckpointInterval > 0 {
		args += fmt.Sprintf(" -ts_monitor_checkpoint $SCRATCH/checkpoint -ts_monitor_checkpoint_interval %d",
			spec.CheckpointInterval)
	}
	command := fmt.Sprintf(`%s/bin/ratel-quasistatic -ceed %s -options_file "$SCRATCH/options.yml"%s`,
		spec.RatelDir, config.CeedBackend, args)

	data := scriptData{
		JobName:     spec.JobName,
		Nodes:       nodes,
		Tasks:       tasks,
		Processes:   spec.Processes,
		MaxTime:     maxTime,
		Partition:   config.Partition,
		Bank:        config.Bank,
		OutputDir:   spec.OutputDir,
		FluxArgs:    config.FluxArgs,
		Packages:    config.Packages,
		Defines:     config.Defines,
		OptionsFile: spec.OptionsFile,
		Restart:     restart,
		Command:     command,
	}
	if restart {
		// Re-use the scratch directory of the job being continued; the batch
		// directives cannot reference the new job's own identifier here.
		data.Scratch = fmt.Sprintf("%s/%s-%s",
			spec.ScratchDir, spec.JobName, fluid.Encode(*spec.OriginalJobID, fluid.Decimal))
		data.Dependency = fluid.Encode(*dependent, fluid.Base58)
		data.Command += ` -continue_file "$newest_file"`
	} else {
		data.Scratch = fmt.Sprintf("%s/%s-$JOB_ID", spec.ScratchDir, spec.JobName)
	}

	var script strings.Builder
	if err := batchScriptTemplate.Execute(&script, data); err != nil {
		return "", errors.WithStack(err)
	}
	return script.String(), nil
}

// WriteScript renders the batch script for spec and writes it into dir,
// creating dir if necessary. Returns the path of the written script.
func WriteScript(spec ScriptSpec, dir string) (string, error) {
	script, err := Generate(spec)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.WithStack(err)
	}
	f, err := os.CreateTemp(dir, spec.JobName+"-*.sh")
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()
	if _, err := f.WriteString(script); err != nil {
		return "", errors.WithStack(err)
	}
	return f.Name(), nil
}
