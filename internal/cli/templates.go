package cli

import (
	"fmt"

	"github.com/eldridge/starman-dpkg/internal/output"
	"github.com/eldridge/starman-dpkg/internal/template"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [kind]",
	Short: "List bundled templates or show a default body",
	Long: `Templates lists the bundled control-file template kinds. With a
kind argument, it prints that kind's bundled default body.

Examples:
  starman-dpkg templates
  starman-dpkg templates init`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		kind := args[0]
		if !template.IsValidKind(kind) {
			return fmt.Errorf("unknown template kind: %s", kind)
		}
		body, err := template.Default(kind)
		if err != nil {
			return err
		}
		fmt.Print(body)
		return nil
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{"kinds": template.Kinds()})
	}

	for _, kind := range template.Kinds() {
		output.Print("%s", kind)
	}
	return nil
}
