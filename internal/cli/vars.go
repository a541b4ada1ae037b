package cli

import (
	"sort"

	"github.com/eldridge/starman-dpkg/internal/generator"
	"github.com/eldridge/starman-dpkg/internal/output"
	"github.com/eldridge/starman-dpkg/internal/resolver"
	"github.com/spf13/cobra"
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Show the resolved template variables",
	Long: `Vars resolves the full template variable map for the configured
package and prints it, without rendering any templates.

Examples:
  starman-dpkg vars
  starman-dpkg vars --json`,
	Args: cobra.NoArgs,
	RunE: runVars,
}

func init() {
	rootCmd.AddCommand(varsCmd)
}

func runVars(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	vars := resolver.Resolve(cfg, generator.New(cfg).Seed())

	if jsonOutput {
		return output.JSON(vars)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, vars[k]})
	}
	output.Table([]string{"VARIABLE", "VALUE"}, rows)
	return nil
}
