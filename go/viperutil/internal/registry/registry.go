/*
Copyright 2023 The Vitess Authors.

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

package registry

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Static is the registry for config variables. Values bound to it keep
	// the value they were loaded with for the lifetime of the process.
	Static = viper.New()

	_ Bindable = (*viper.Viper)(nil)
)

// Bindable represents the methods needed to bind a value.Value to a given
// registry.
type Bindable interface {
	BindEnv(vars ...string) error
	BindPFlag(key string, flag *pflag.Flag) error
	RegisterAlias(alias string, key string)
	SetDefault(key string, value any)
}
