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
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"vitess.io/ustrings/go/cmd/ustrconv/cli"
	"vitess.io/ustrings/go/ustrings/unitio"
	"vitess.io/ustrings/go/vt/log"
	"vitess.io/ustrings/go/vt/utils"
)

var (
	// Convert converts files from one format to another.
	Convert = &cobra.Command{
		Use:   "convert [--from <format>] [--to <format>] [--output-dir <dir>] [--bom] [--strip-bom] <file> [<file> ...]",
		Short: "Converts files from one encoding to another.",
		Long: `Converts files from one encoding to another.

Each <file> is written next to itself, or into --output-dir, with the extension
of the target format (for example notes.txt becomes notes.utf16le). A single
"-" reads standard input and writes the result to standard output.

Formats are utf8, utf16, utf16le, utf16be, utf32, utf32le, utf32be and wide.
Formats that do not name a byte order use --byte-order, and wide uses
--wide-width.`,
		Example: `ustrconv convert --from utf8 --to utf16be --output-dir out/ a.txt b.txt
ustrconv convert --to wide --wide-width 16 --on-invalid fail - < in.txt > out.bin`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		RunE:                  commandConvert,
	}
)

var convertOptions = struct {
	From      *cli.FormatFlag
	To        *cli.FormatFlag
	OutputDir string
	BOM       bool
	StripBOM  bool
	Parallel  int
}{
	From: cli.NewFormatFlag("utf8"),
	To:   cli.NewFormatFlag("utf16"),
}

type conversion struct {
	src     unitio.Format
	dest    string
	in, out int
}

func commandConvert(cmd *cobra.Command, args []string) error {
	opts, err := transcodeOptions()
	if err != nil {
		return err
	}
	from, err := resolveFormat(convertOptions.From.Format())
	if err != nil {
		return err
	}
	to, err := resolveFormat(convertOptions.To.Format())
	if err != nil {
		return err
	}
	if err := checkStdin(args); err != nil {
		return err
	}
	if convertOptions.Parallel < 1 {
		return errors.New("--parallel must be at least 1")
	}

	dests, err := outputPaths(args, convertOptions.OutputDir, to)
	if err != nil {
		return err
	}

	cli.FinishedParsing(cmd)

	results := make([]conversion, len(args))
	err = forEachFile(cmd.Context(), args, convertOptions.Parallel, func(ctx context.Context, i int, name string) error {
		data, err := readInput(cmd, name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		src := from
		if convertOptions.StripBOM {
			data, src = stripBOM(data, src)
		}

		out, err := unitio.Transcode(data, src, to, opts)
		if err != nil {
			return fmt.Errorf("failed to convert %s from %v to %v: %w", name, src, to, err)
		}
		if convertOptions.BOM {
			out = append(unitio.BOM(to), out...)
		}

		if name == stdinName {
			_, err := cmd.OutOrStdout().Write(out)
			return err
		}

		dest := dests[i]
		if convertOptions.OutputDir != "" {
			if err := FS.MkdirAll(convertOptions.OutputDir, 0o755); err != nil {
				return err
			}
		}
		if err := afero.WriteFile(FS, dest, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}

		if log.Enabled(slog.LevelDebug) {
			log.DebugS("converted", "input", name, "output", dest, "from", src.String(), "to", to.String())
		}
		results[i] = conversion{src: src, dest: dest, in: len(data), out: len(out)}
		return nil
	})
	if err != nil {
		return err
	}

	for i, r := range results {
		if r.dest == "" {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%v, %s) -> %s (%v, %s)\n",
			args[i], r.src, humanize.Bytes(uint64(r.in)), r.dest, to, humanize.Bytes(uint64(r.out)))
	}
	return nil
}

// outputPaths maps every file argument to its output path, refusing
// conversions that would overwrite an input or another file's output.
func outputPaths(args []string, dir string, to unitio.Format) ([]string, error) {
	inputs := make(map[string]bool, len(args))
	for _, name := range args {
		inputs[filepath.Clean(name)] = true
	}

	dests := make([]string, len(args))
	owners := make(map[string]string, len(args))
	for i, name := range args {
		if name == stdinName {
			continue
		}
		dest := outputPath(name, dir, to)
		if inputs[dest] {
			return nil, fmt.Errorf("refusing to overwrite input %s with the conversion of %s", dest, name)
		}
		if prev, ok := owners[dest]; ok {
			return nil, fmt.Errorf("%s and %s would both be converted to %s", prev, name, dest)
		}
		owners[dest] = name
		dests[i] = dest
	}
	return dests, nil
}

func init() {
	Convert.Flags().Var(convertOptions.From, "from", "format of the input files")
	Convert.Flags().Var(convertOptions.To, "to", "format to convert to")
	utils.SetFlagStringVar(Convert.Flags(), &convertOptions.OutputDir, "output-dir", "", "directory for the converted files (default: next to each input)")
	utils.SetFlagBoolVar(Convert.Flags(), &convertOptions.BOM, "bom", false, "start each output with the byte order mark of the target format")
	utils.SetFlagBoolVar(Convert.Flags(), &convertOptions.StripBOM, "strip-bom", true, "drop a byte order mark matching the input format and use its byte order")
	utils.SetFlagIntVar(Convert.Flags(), &convertOptions.Parallel, "parallel", 4, "number of files converted at once")
	Root.AddCommand(Convert)
}
