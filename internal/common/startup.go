package common

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ratelproject/ratel-runner/internal/common/config"
	"github.com/ratelproject/ratel-runner/internal/configuration"
)

// LoadConfig reads the ratelctl config file from path, if one exists, and
// unmarshals it on top of runnerConfig. Values can also be supplied through
// RATEL_-prefixed environment variables.
func LoadConfig(runnerConfig *configuration.RunnerConfig, path string) error {
	viper.SetConfigName("ratelctl")
	viper.AddConfigPath(path)
	viper.SetEnvPrefix("RATEL")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; the defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.WithStack(err)
		}
	}
	if err := viper.Unmarshal(runnerConfig, config.CustomHooks...); err != nil {
		return errors.WithStack(err)
	}
	return runnerConfig.Validate()
}

func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

// ConfigureCommandLineLogging prints bare log messages to stderr, keeping
// stdout free for command output.
func ConfigureCommandLineLogging() {
	log.SetFormatter(&CommandLineFormatter{})
	log.SetOutput(os.Stderr)
}

// CommandLineFormatter drops timestamps and levels from log output.
type CommandLineFormatter struct{}

func (f *CommandLineFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%s\n", entry.Message)), nil
}
