package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getRaw bool

var getCmd = &cobra.Command{
	Use:   "get FILE SECTION OPTION",
	Short: "Print the value of an option",
	Long: `Print the resolved value of an option. With --raw the value is
printed as written in the file, without escape translation or variable
substitution.

Options of the reserved sections can be read too:

  inicat get app.ini env HOME
  inicat get app.ini system os.name`,
	Args: cobra.ExactArgs(3),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getRaw, "raw", false, "print the stored value without resolving it")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context(), args[0])
	if err != nil {
		printError(cmd, "cannot load configuration", err)
		return err
	}
	section, option := args[1], args[2]

	if getRaw {
		sec, ok := cfg.Section(section)
		if !ok {
			return notFound(cmd, section, option)
		}
		v, ok := sec.Value(option)
		if !ok {
			return notFound(cmd, section, option)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Text)
		return nil
	}

	value, ok, err := cfg.Resolve(section, option)
	if err != nil {
		printError(cmd, "cannot resolve "+section+"."+option, err)
		return err
	}
	if !ok {
		return notFound(cmd, section, option)
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func notFound(cmd *cobra.Command, section, option string) error {
	err := fmt.Errorf("%s.%s is not defined", section, option)
	printError(cmd, "lookup failed", err)
	return err
}
