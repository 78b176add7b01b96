package cmd

import (
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bmc/grizzled-go/core/config"
	gzerror "github.com/bmc/grizzled-go/core/error"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Write a configuration in another format",
	Long: `Write the configuration to standard output.

  ini   stored values, unresolved, includes expanded (default)
  toml  resolved values as TOML tables
  yaml  resolved values as YAML mappings
  json  resolved values as a JSON object of objects`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "ini", "output format: ini, toml, yaml or json")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context(), args[0])
	if err != nil {
		printError(cmd, "cannot load configuration", err)
		return err
	}

	if err := dump(cmd.OutOrStdout(), cfg, dumpFormat); err != nil {
		printError(cmd, "cannot write configuration", err)
		return err
	}
	return nil
}

func dump(w io.Writer, cfg *config.Configuration, format string) error {
	if format == "json" {
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg.ToMap()); err != nil {
			return gzerror.Wrap(err, "JSON encode error").
				WithCode(gzerror.CodeIOError).
				WithOperation("inicat.dump")
		}
		return nil
	}

	f, err := config.ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case config.FormatTOML:
		return config.EncodeTOML(w, cfg)
	case config.FormatYAML:
		return config.EncodeYAML(w, cfg)
	default:
		_, err := cfg.WriteTo(w)
		return err
	}
}
