package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/ratelproject/ratel-runner/internal/flux/machines"
)

// CustomHooks are the decode hooks applied when unmarshalling config files,
// so that machine names and GPU modes written as plain strings are validated
// as they are read.
var CustomHooks = []viper.DecoderConfigOption{
	viper.DecodeHook(MachineHookFunc()),
	viper.DecodeHook(GPUModeHookFunc()),
}

func MachineHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// check that src and target types are valid
		if f.Kind() != reflect.String || t != reflect.TypeOf(machines.Tuolumne) {
			return data, nil
		}
		return machines.ParseMachine(data.(string))
	}
}

func GPUModeHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// check that src and target types are valid
		if f.Kind() != reflect.String || t != reflect.TypeOf(machines.SPX) {
			return data, nil
		}
		return machines.ParseGPUMode(data.(string))
	}
}
