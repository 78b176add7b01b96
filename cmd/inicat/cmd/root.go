package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bmc/grizzled-go/core/config"
	gzlog "github.com/bmc/grizzled-go/core/log"
	"github.com/bmc/grizzled-go/utils/filex"
	"github.com/bmc/grizzled-go/utils/mapx"
)

var (
	strict       bool
	verbose      bool
	noColor      bool
	defaultFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "inicat",
	Short: "Inspect INI configuration files",
	Long: `inicat reads INI configuration files the way applications built on
grizzled-go do: includes are expanded, ${section.option} references
are substituted and the reserved env and system sections are available.

FILE may be a path, an http(s) or file URL, or a bare name such as
"app", which is searched for as app, app.ini, app.cfg and app.conf in
the working directory, the user config directory and /etc.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := gzlog.LevelWarn
		if verbose {
			level = gzlog.LevelDebug
		}
		gzlog.SetDefault(gzlog.NewWithConfig(gzlog.Config{
			Level:  level,
			Format: gzlog.FormatConsole,
			Output: cmd.ErrOrStderr(),
			Name:   "inicat",
		}))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on references to undefined variables")
	rootCmd.PersistentFlags().StringArrayVar(&defaultFiles, "defaults", nil, "TOML or YAML file with default sections (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// loadOptions builds parse options from the persistent flags. Later
// --defaults files override earlier ones.
func loadOptions() (config.Options, error) {
	opts := config.Options{Strict: strict}
	for _, path := range defaultFiles {
		sections, err := config.SectionsFromFile(path)
		if err != nil {
			return opts, err
		}
		opts.Predefined = mapx.MergeNested(opts.Predefined, sections)
	}
	return opts, nil
}

// loadConfig loads the configuration named on the command line.
func loadConfig(ctx context.Context, target string) (*config.Configuration, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}

	switch {
	case strings.Contains(target, "://"):
		return config.LoadURL(ctx, target, opts)
	case target == "-":
		return config.LoadFromReader(os.Stdin, "<stdin>", opts)
	case !filex.Exists(target) && !strings.ContainsRune(target, os.PathSeparator):
		gzlog.Debug("searching for configuration", gzlog.Field("name", target))
		return config.Discover(config.DefaultDiscoveryOptions(target), opts)
	default:
		return config.LoadWithOptions(target, opts)
	}
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
