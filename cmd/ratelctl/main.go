package main

import (
	"github.com/ratelproject/ratel-runner/cmd/ratelctl/cmd"
	"github.com/ratelproject/ratel-runner/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	cmd.Execute()
}
