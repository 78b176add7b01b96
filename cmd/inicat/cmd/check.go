package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a configuration",
	Long: `Parse a configuration and resolve every option in strict mode.
Each option that references an undefined variable or takes part in a
reference cycle is reported with its error code.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	strict = true
	cfg, err := loadConfig(cmd.Context(), args[0])
	if err != nil {
		printError(cmd, "cannot load configuration", err)
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	problems := 0
	for _, section := range cfg.SectionNames() {
		for _, option := range cfg.OptionNames(section) {
			if _, _, err := cfg.Resolve(section, option); err != nil {
				problems++
				fmt.Fprintf(out, "%s.%s: %s %v\n", section, option,
					st.failed.Render(string(gzerror.GetCode(err))), err)
			}
		}
	}

	if problems > 0 {
		err := &exitError{count: problems}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", args[0], err)
		return err
	}
	fmt.Fprintf(out, "%s: ok (%d sections)\n", args[0], len(cfg.SectionNames()))
	return nil
}

// exitError reports a failure already printed to the user.
type exitError struct{ count int }

func (e *exitError) Error() string {
	return fmt.Sprintf("%d problem(s) found", e.count)
}
