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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vitess.io/ustrings/go/cmd/ustrconv/cli"
	"vitess.io/ustrings/go/ustrings"
	"vitess.io/ustrings/go/ustrings/unitio"
	"vitess.io/ustrings/go/vt/log"
	"vitess.io/ustrings/go/vt/utils"
)

var (
	// Validate checks that files are well formed in a given format.
	Validate = &cobra.Command{
		Use:   "validate [--from <format>] <file> [<file> ...]",
		Short: "Validates that files are well formed in the given encoding.",
		Long: `Validates that files are well formed in the given encoding.

For each invalid file, the offset of the first invalid sequence is printed, in
code units of the input format. The command fails if any file is invalid.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		RunE:                  commandValidate,
	}
)

var validateOptions = struct {
	From     *cli.FormatFlag
	StripBOM bool
	Parallel int
}{
	From: cli.NewFormatFlag("utf8"),
}

// ErrInvalidFiles is returned by validate when at least one file is invalid.
var ErrInvalidFiles = errors.New("invalid files found")

func commandValidate(cmd *cobra.Command, args []string) error {
	from, err := resolveFormat(validateOptions.From.Format())
	if err != nil {
		return err
	}
	if err := checkStdin(args); err != nil {
		return err
	}
	if validateOptions.Parallel < 1 {
		return errors.New("--parallel must be at least 1")
	}

	cli.FinishedParsing(cmd)

	utf32 := unitio.MustParseFormat("utf32")
	results := make([]error, len(args))
	counts := make([]int, len(args))
	err = forEachFile(cmd.Context(), args, validateOptions.Parallel, func(ctx context.Context, i int, name string) error {
		data, err := readInput(cmd, name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		src := from
		if validateOptions.StripBOM {
			data, src = stripBOM(data, src)
		}

		out, err := unitio.Transcode(data, src, utf32, unitio.Options{})
		switch {
		case errors.Is(err, ustrings.ErrInvalidSequence), errors.Is(err, unitio.ErrTruncatedUnit):
			results[i] = err
		case err != nil:
			return fmt.Errorf("failed to validate %s: %w", name, err)
		default:
			counts[i] = len(out) / utf32.UnitSize()
		}
		return nil
	})
	if err != nil {
		return err
	}

	invalid := 0
	for i, name := range args {
		if results[i] != nil {
			invalid++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, results[i])
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %v, %s code points\n", name, from, humanize.Comma(int64(counts[i])))
	}

	if invalid > 0 {
		log.WarnS("validation failed", "invalid", invalid, "files", len(args))
		return fmt.Errorf("%w: %d of %d", ErrInvalidFiles, invalid, len(args))
	}
	return nil
}

func init() {
	Validate.Flags().Var(validateOptions.From, "from", "format of the input files")
	utils.SetFlagBoolVar(Validate.Flags(), &validateOptions.StripBOM, "strip-bom", true, "ignore a byte order mark matching the input format and use its byte order")
	utils.SetFlagIntVar(Validate.Flags(), &validateOptions.Parallel, "parallel", 4, "number of files validated at once")
	Root.AddCommand(Validate)
}
