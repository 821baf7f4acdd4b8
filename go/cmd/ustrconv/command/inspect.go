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
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/ustrings/go/cmd/ustrconv/cli"
	"vitess.io/ustrings/go/hack"
	"vitess.io/ustrings/go/ustrings"
	"vitess.io/ustrings/go/ustrings/unitio"
	"vitess.io/ustrings/go/vt/utils"
)

var (
	// Inspect lists the code points of a file or a string.
	Inspect = &cobra.Command{
		Use:   "inspect [--from <format>] [--output table|json] (<file> | --text <text>)",
		Short: "Lists the code points of a file, with their UTF-8 and UTF-16 encodings.",
		Long: `Lists the code points of a file, with their UTF-8 and UTF-16 encodings.

Each row gives the offset of the sequence in code units of the input format,
the code point, the units it was decoded from and its encodings. Invalid
sequences are listed as such, one row each.`,
		Example: `ustrconv inspect --text 'héllo 😀'
ustrconv inspect --from utf16be --output json file.txt`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MaximumNArgs(1),
		RunE:                  commandInspect,
	}
)

var inspectOptions = struct {
	From   *cli.FormatFlag
	Text   string
	Output string
}{
	From: cli.NewFormatFlag("utf8"),
}

// codePoint is one row of the inspect output.
type codePoint struct {
	Offset    int    `json:"offset"`
	CodePoint string `json:"code_point"`
	Source    string `json:"source"`
	UTF8      string `json:"utf8"`
	UTF16     string `json:"utf16"`
}

func commandInspect(cmd *cobra.Command, args []string) error {
	hasText := cmd.Flags().Changed("text")
	if hasText == (len(args) == 1) {
		return errors.New("exactly one of <file> or --text is required")
	}
	if hasText && cmd.Flags().Changed("from") && inspectOptions.From.Format().Encoding != ustrings.UTF8 {
		return errors.New("--text is always UTF-8 and cannot be combined with --from")
	}
	switch inspectOptions.Output {
	case "table", "json":
	default:
		return fmt.Errorf("invalid --output %q: expected table or json", inspectOptions.Output)
	}
	from, err := resolveFormat(inspectOptions.From.Format())
	if err != nil {
		return err
	}

	cli.FinishedParsing(cmd)

	var data []byte
	if hasText {
		data = hack.StringBytes(inspectOptions.Text)
		from = unitio.MustParseFormat("utf8")
	} else {
		if data, err = readInput(cmd, args[0]); err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	}

	units, err := unitio.Decode(data, from)
	if err != nil {
		return err
	}
	rows := inspectUnits(units, from)

	if inspectOptions.Output == "json" {
		data, err := cli.MarshalJSON(rows)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Offset", "Code Point", "Source", "UTF-8", "UTF-16")
	invalid := 0
	for _, row := range rows {
		if row.CodePoint == "invalid" {
			invalid++
		}
		if err := table.Append([]string{fmt.Sprint(row.Offset), row.CodePoint, row.Source, row.UTF8, row.UTF16}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s code points, %s invalid sequences (%v)\n",
		humanize.Comma(int64(len(rows)-invalid)), humanize.Comma(int64(invalid)), from)
	return nil
}

// inspectUnits decodes the unit slice that unitio.Decode returned for f one
// sequence at a time.
func inspectUnits(units any, f unitio.Format) []codePoint {
	switch u := units.(type) {
	case []byte:
		return stepUnits(u, ustrings.DecodeUTF8, 2)
	case []uint16:
		return stepUnits(u, ustrings.DecodeUTF16, 4)
	case []rune:
		return stepUnits(u, decodeUTF32, 8)
	case []ustrings.WChar:
		if f.Wide.Width() != ustrings.Wide16 {
			return stepUnits(u, decodeWide32, 8)
		}
		narrow := make([]uint16, len(u))
		for i, c := range u {
			narrow[i] = uint16(c)
		}
		return stepUnits(narrow, ustrings.DecodeUTF16, 4)
	}
	return nil
}

func decodeUTF32(p []rune) (rune, int) {
	if ustrings.ValidRune(p[0]) {
		return p[0], 1
	}
	return ustrings.Invalid, 1
}

func decodeWide32(p []ustrings.WChar) (rune, int) {
	return decodeUTF32(hack.CastSlice[rune](p[:1]))
}

func stepUnits[U ustrings.Unit](src []U, decode func([]U) (rune, int), digits int) []codePoint {
	var rows []codePoint
	for i := 0; i < len(src); {
		r, n := decode(src[i:])
		rows = append(rows, describe(i, r, hexUnits(src[i:i+n], digits)))
		i += n
	}
	return rows
}

func describe(offset int, r rune, source string) codePoint {
	row := codePoint{Offset: offset, Source: source, CodePoint: "invalid", UTF8: "-", UTF16: "-"}
	if r == ustrings.Invalid {
		return row
	}
	row.CodePoint = fmt.Sprintf("U+%04X", r)
	if u8, n := ustrings.AppendUTF8(nil, r); n > 0 {
		row.UTF8 = hexUnits(u8, 2)
	}
	if u16, n := ustrings.AppendUTF16(nil, r); n > 0 {
		row.UTF16 = hexUnits(u16, 4)
	}
	return row
}

func hexUnits[U ustrings.Unit](units []U, digits int) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%0*X", digits, uint32(u))
	}
	return strings.Join(parts, " ")
}

func init() {
	Inspect.Flags().Var(inspectOptions.From, "from", "format of the input file")
	utils.SetFlagStringVar(Inspect.Flags(), &inspectOptions.Text, "text", "", "UTF-8 text to inspect instead of a file")
	utils.SetFlagStringVar(Inspect.Flags(), &inspectOptions.Output, "output", "table", "output format: table or json")
	Root.AddCommand(Inspect)
}
