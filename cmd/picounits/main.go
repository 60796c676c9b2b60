// Command picounits inspects .uiv documents, converts between prefix
// scales, and manages project display preferences.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wgbowley/PicoUnits/config"
	"github.com/wgbowley/PicoUnits/picounits"
	"github.com/wgbowley/PicoUnits/picounits/uiv"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "picounits",
		Short:         "Dimensional quantities with enforced unit correctness",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(
		newInspectCmd(),
		newConvertCmd(),
		newUnitCmd(),
		newConfigCmd(),
	)
	return root
}

// logger builds the CLI logger: human-readable, debug level when
// --verbose is set.
func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.uiv>",
		Short: "Load a .uiv document and print its quantities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			defer log.Sync()

			prefs, err := discoverPreferences(log)
			if err != nil {
				return err
			}

			loader := uiv.NewLoader(uiv.WithLogger(log))
			doc, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			renderDocument(cmd.OutOrStdout(), doc, prefs)
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from-prefix> <to-prefix>",
		Short: "Rescale a value between decade prefixes",
		Long: "Rescale a value between decade prefixes, given by symbol" +
			" (k, m, u, ...). Use \"base\" for the unscaled base.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad value %q: %w", args[0], err)
			}
			from, err := prefixArg(args[1])
			if err != nil {
				return err
			}
			to, err := prefixArg(args[2])
			if err != nil {
				return err
			}
			out, err := picounits.Convert(value, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v %s = %v %s\n",
				value, from, out, to)
			return nil
		},
	}
}

func prefixArg(symbol string) (picounits.Prefix, error) {
	if symbol == "base" {
		return picounits.PrefixBase, nil
	}
	p, ok := picounits.PrefixFromSymbol(symbol)
	if !ok {
		return picounits.PrefixBase, fmt.Errorf("unknown prefix symbol %q", symbol)
	}
	return p, nil
}

func newUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unit <expression>",
		Short: "Parse a unit expression and show its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			defer log.Sync()

			prefs, err := discoverPreferences(log)
			if err != nil {
				return err
			}

			u, err := picounits.ParseUnit(args[0])
			if err != nil {
				return err
			}
			renderUnit(cmd.OutOrStdout(), args[0], u, prefs)
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the project .picounits preference file",
	}

	var force bool
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Write a starter .picounits into the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			path, err := config.Generate(dir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}
	generate.Flags().BoolVarP(&force, "force", "f", false,
		"overwrite an existing file")

	configCmd.AddCommand(generate)
	return configCmd
}

func discoverPreferences(log *zap.Logger) (*config.Preferences, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if path, ok := config.Find(dir); ok {
		log.Debug("using project preferences", zap.String("path", path))
		return config.Load(path)
	}
	log.Debug("no project preferences found, using SI defaults")
	return config.Default(), nil
}
