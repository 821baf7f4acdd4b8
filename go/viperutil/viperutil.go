/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package viperutil provides a typed layer over a viper registry.

A Value is declared once with Configure, naming its config key, default, flag
and environment variables:

	onInvalid = viperutil.Configure("on-invalid", viperutil.Options[string]{
		Default:  "substitute",
		FlagName: "on-invalid",
		EnvVars:  []string{"USTRCONV_ON_INVALID"},
	})

After the flags are registered, BindFlags ties the values to them, and
LoadConfig reads an optional config file. Get then resolves the value with
viper's precedence: flag, environment, config file, default.
*/
package viperutil

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vitess.io/ustrings/go/viperutil/internal/registry"
	"vitess.io/ustrings/go/viperutil/internal/value"
)

// Value represents a value that is managed by viper.
type Value[T any] interface {
	value.Registerable

	// Get returns the current value.
	Get() T
	// Set sets the value in the registry, overriding config, environment and
	// flags.
	Set(v T)
	// Default returns the default value configured for this Value.
	Default() T
}

// Options configures a Value.
type Options[T any] struct {
	// Aliases are alternative keys for the value in a config file.
	Aliases []string
	// FlagName is the name of the flag bound by BindFlags.
	FlagName string
	// EnvVars are environment variables read for the value, in order.
	EnvVars []string
	// Default is used when no other source sets the value.
	Default T

	// GetFunc reads the value from a viper. It defaults to a getter for T
	// when T is a string, bool, int or []string.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Configure returns a Value bound to the static registry under key.
func Configure[T any](key string, opts Options[T]) Value[T] {
	getfunc := opts.GetFunc
	if getfunc == nil {
		getfunc = GetFuncForType[T]()
	}

	return value.NewStatic(&value.Base[T]{
		KeyName:    key,
		DefaultVal: opts.Default,
		GetFunc:    getfunc,
		Aliases:    opts.Aliases,
		FlagName:   opts.FlagName,
		EnvVars:    opts.EnvVars,
	})
}

// GetFuncForType returns the default getter for T. It panics for types it
// has no getter for.
func GetFuncForType[T any]() func(v *viper.Viper) func(key string) T {
	var t T
	var f any
	switch any(t).(type) {
	case string:
		f = func(v *viper.Viper) func(string) string { return v.GetString }
	case bool:
		f = func(v *viper.Viper) func(string) bool { return v.GetBool }
	case int:
		f = func(v *viper.Viper) func(string) int { return v.GetInt }
	case []string:
		f = func(v *viper.Viper) func(string) []string { return v.GetStringSlice }
	default:
		panic(fmt.Sprintf("unsupported type %T for viperutil.GetFuncForType", t))
	}
	return f.(func(v *viper.Viper) func(string) T)
}

// BindFlags binds each value to its flag on fs. It panics when a value names
// a flag that fs does not define.
func BindFlags(fs *pflag.FlagSet, values ...value.Registerable) {
	value.BindFlags(fs, values...)
}

// LoadConfig reads the config file at path from fsys into the static
// registry. An empty path is a no-op. The file type is taken from the
// extension.
func LoadConfig(fsys afero.Fs, path string) error {
	if path == "" {
		return nil
	}
	registry.Static.SetFs(fsys)
	registry.Static.SetConfigFile(path)
	if err := registry.Static.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// ConfigFileUsed returns the path of the loaded config file, if any.
func ConfigFileUsed() string {
	return registry.Static.ConfigFileUsed()
}
