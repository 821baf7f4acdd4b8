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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"vitess.io/ustrings/go/cmd/ustrconv/cli"
	"vitess.io/ustrings/go/ustrings"
	"vitess.io/ustrings/go/ustrings/unitio"
	"vitess.io/ustrings/go/viperutil"
	"vitess.io/ustrings/go/vt/log"
	"vitess.io/ustrings/go/vt/utils"
)

var (
	// FS is the filesystem the commands read from and write to.
	FS = afero.NewOsFs()

	configFile string

	// Flag holders. The values are read back through the viper values below.
	flagOnInvalid   string
	flagReplacement string
	flagWideWidth   string
	flagByteOrder   string

	onInvalid = viperutil.Configure("on-invalid", viperutil.Options[string]{
		Default:  "substitute",
		FlagName: "on-invalid",
		EnvVars:  []string{"USTRCONV_ON_INVALID"},
	})
	replacement = viperutil.Configure("replacement", viperutil.Options[string]{
		Default:  "?",
		FlagName: "replacement",
		EnvVars:  []string{"USTRCONV_REPLACEMENT"},
	})
	wideWidth = viperutil.Configure("wide-width", viperutil.Options[string]{
		Default:  "native",
		FlagName: "wide-width",
		EnvVars:  []string{"USTRCONV_WIDE_WIDTH"},
	})
	byteOrder = viperutil.Configure("byte-order", viperutil.Options[string]{
		Default:  "le",
		FlagName: "byte-order",
		EnvVars:  []string{"USTRCONV_BYTE_ORDER"},
	})

	// Root is the main entrypoint to ustrconv.
	Root = &cobra.Command{
		Use:   "ustrconv",
		Short: "ustrconv converts text between UTF-8, UTF-16, UTF-32 and wide character encodings.",
		Long: `ustrconv converts text between UTF-8, UTF-16, UTF-32 and wide character encodings.

Invalid sequences are replaced by a single replacement unit each, or abort the
conversion, depending on --on-invalid.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return viperutil.LoadConfig(FS, configFile)
		},
	}
)

// transcodeOptions builds the conversion options from the configuration.
func transcodeOptions() (unitio.Options, error) {
	substitute, err := cli.ParseOnInvalid(onInvalid.Get())
	if err != nil {
		return unitio.Options{}, err
	}
	r, err := cli.ParseReplacement(replacement.Get())
	if err != nil {
		return unitio.Options{}, err
	}
	return unitio.Options{Substitute: substitute, Replacement: r}, nil
}

// resolveFormat applies the configured byte order and wide width to f.
func resolveFormat(f unitio.Format) (unitio.Format, error) {
	order, err := unitio.ParseByteOrder(byteOrder.Get())
	if err != nil {
		return f, err
	}
	f = f.WithOrder(order)
	if f.Encoding == ustrings.Wide {
		width, err := ustrings.ParseWideWidth(wideWidth.Get())
		if err != nil {
			return f, err
		}
		f = f.WithWide(ustrings.NewWideCodec(width))
	}
	return f, nil
}

func init() {
	fs := Root.PersistentFlags()
	utils.SetFlagStringVar(fs, &configFile, "config", "", "YAML config file providing on-invalid, replacement, wide-width and byte-order")
	utils.SetFlagStringVar(fs, &flagOnInvalid, "on-invalid", onInvalid.Default(), "what to do with an invalid sequence: substitute or fail")
	utils.SetFlagStringVar(fs, &flagReplacement, "replacement", replacement.Default(), "replacement unit for invalid sequences: one character, or 0x.., U+.. or a decimal unit value")
	utils.SetFlagStringVar(fs, &flagWideWidth, "wide-width", wideWidth.Default(), "width of the wide encoding in bits: native, 16 or 32")
	utils.SetFlagStringVar(fs, &flagByteOrder, "byte-order", byteOrder.Default(), "byte order of formats that do not name one: le or be")
	log.RegisterFlags(fs)

	viperutil.BindFlags(fs, onInvalid, replacement, wideWidth, byteOrder)
}
