package cli

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the package configuration",
	Long: `Validate loads the configuration file, applies defaults, and runs
every validation check without rendering or writing anything.

Examples:
  starman-dpkg validate
  starman-dpkg validate --config packaging/myapp.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return outputResult(
		map[string]interface{}{
			"valid":      true,
			"package":    cfg.Package,
			"web_server": cfg.WebServer,
		},
		"Configuration valid for %s (web server: %s)", cfg.Package, cfg.WebServer,
	)
}
