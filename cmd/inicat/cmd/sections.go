package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

var (
	showOptions  bool
	matchPattern string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections FILE",
	Short: "List the sections of a configuration",
	Long: `List section names in sorted order. With --options each section is
followed by its options and resolved values; raw values are shown as
written and marked with "->".`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().BoolVarP(&showOptions, "options", "o", false, "show options and values")
	sectionsCmd.Flags().StringVarP(&matchPattern, "match", "m", "", "only sections whose name matches this regular expression")
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context(), args[0])
	if err != nil {
		printError(cmd, "cannot load configuration", err)
		return err
	}

	names := cfg.SectionNames()
	if matchPattern != "" {
		re, err := regexp.Compile(matchPattern)
		if err != nil {
			printError(cmd, "invalid --match pattern", err)
			return err
		}
		names = names[:0]
		for _, sec := range cfg.MatchingSections(re) {
			names = append(names, sec.Name())
		}
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	for _, name := range names {
		if !showOptions {
			fmt.Fprintln(out, name)
			continue
		}

		fmt.Fprintln(out, st.section.Render("["+name+"]"))
		sec, _ := cfg.Section(name)
		for _, opt := range sec.OptionNames() {
			stored, _ := sec.Value(opt)
			if stored.Raw {
				fmt.Fprintf(out, "  %s -> %s\n", st.option.Render(opt), st.raw.Render(stored.Text))
				continue
			}
			value, _, err := cfg.Resolve(name, opt)
			if err != nil {
				fmt.Fprintf(out, "  %s = %s\n", st.option.Render(opt), st.failed.Render("<"+err.Error()+">"))
				continue
			}
			fmt.Fprintf(out, "  %s = %s\n", st.option.Render(opt), value)
		}
	}
	return nil
}
