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

package command

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"vitess.io/ustrings/go/ustrings"
)

// AppVersion is set at build time with
// -ldflags "-X vitess.io/ustrings/go/cmd/ustrconv/command.AppVersion=...".
var AppVersion = "dev"

// Version prints the version of ustrconv.
var Version = &cobra.Command{
	Use:   "version",
	Short: "Prints the version of ustrconv and the native wide character width.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ustrconv %s %s %s/%s native-wide=%v\n",
			AppVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, ustrings.NativeWideWidth)
	},
}

func init() {
	Root.AddCommand(Version)
}
