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
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vitess.io/ustrings/go/ustrings"
	"vitess.io/ustrings/go/ustrings/unitio"
)

// stdinName is the file argument that stands for standard input.
const stdinName = "-"

// forEachFile calls fn for every name, running at most parallel calls at
// once. The first error cancels the context passed to the remaining calls.
func forEachFile(ctx context.Context, names []string, parallel int, fn func(ctx context.Context, i int, name string) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i, name)
		})
	}

	return g.Wait()
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(cmd.InOrStdin())
	}
	return afero.ReadFile(FS, name)
}

func checkStdin(names []string) error {
	for _, name := range names {
		if name == stdinName && len(names) > 1 {
			return fmt.Errorf("standard input (%s) must be the only file argument", stdinName)
		}
	}
	return nil
}

// stripBOM removes a byte order mark announcing the encoding form of f from
// data, and returns f with the byte order of the mark.
func stripBOM(data []byte, f unitio.Format) ([]byte, unitio.Format) {
	bom, n, ok := unitio.DetectBOM(data)
	if !ok {
		return data, f
	}
	switch {
	case bom.Encoding == f.Encoding:
	case f.Encoding == ustrings.Wide && bom.UnitSize() == f.UnitSize():
	default:
		return data, f
	}
	f.Order = bom.Order
	return data[n:], f
}

// outputPath is the path a converted copy of name is written to: the same
// base name with the extension of f, in dir or next to name.
func outputPath(name, dir string, f unitio.Format) string {
	if dir == "" {
		dir = filepath.Dir(name)
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return filepath.Join(dir, base+"."+f.Extension())
}
