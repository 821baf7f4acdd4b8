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
Package command contains the commands of ustrconv.

Every subcommand reads its input through FS, so tests can run them against an
in-memory filesystem. The conversion policy and the layout of ambiguous
formats come from the root command's persistent flags, which are bound to a
viper registry: each can also be set with a USTRCONV_* environment variable or
in the YAML file named by --config.
*/
package command
