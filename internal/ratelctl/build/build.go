package build

import "runtime"

// These are populated by the linker at build time.
var (
	ReleaseVersion = "UNKNOWN"
	GitCommit      = "UNKNOWN"
	BuildTime      = "UNKNOWN"
)

// GoVersion is the version of the Go toolchain the binary was built with.
var GoVersion = runtime.Version()
