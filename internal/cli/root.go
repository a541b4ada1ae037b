package cli

import (
	"os"

	"github.com/eldridge/starman-dpkg/internal/config"
	"github.com/eldridge/starman-dpkg/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	cfgFile    string
	pkgName    string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "starman-dpkg",
	Short: "Debian packaging generator for Starman-hosted PSGI applications",
	Long: `starman-dpkg generates the debian/ control files (control, init,
default, install, postinst, postrm, rules, conffiles) for packaging a
PSGI application run under Starman behind Apache and/or nginx.

Package settings are read from a YAML configuration file and substituted
into a bundled set of template bodies, any of which can be overridden
per package.`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultFile, "Path to the package configuration file")
	rootCmd.PersistentFlags().StringVarP(&pkgName, "package", "p", "", "Package name (overrides the config file)")
}
