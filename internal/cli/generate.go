package cli

import (
	"github.com/eldridge/starman-dpkg/internal/generator"
	"github.com/eldridge/starman-dpkg/internal/output"
	"github.com/spf13/cobra"
)

var (
	outputDir string
	dryRun    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the debian/ control-file set",
	Long: `Generate renders every control-file template with the resolved
package variables and writes the results into the output directory.

Examples:
  starman-dpkg generate
  starman-dpkg generate --config packaging/myapp.yaml --output debian
  starman-dpkg generate --dry-run`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "debian", "Output directory for the rendered files")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print rendered files instead of writing them")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gen := generator.New(cfg)

	// Dry-run mode: show what would be written without touching disk
	if dryRun {
		files, err := gen.RenderAll()
		if err != nil {
			return err
		}
		if jsonOutput {
			rendered := make(map[string]string, len(files))
			for _, f := range files {
				rendered[f.Kind] = f.Content
			}
			return output.JSON(rendered)
		}
		for _, f := range files {
			output.Info("--- %s (mode %04o)", f.Kind, f.Mode)
			output.Print("%s", f.Content)
		}
		return nil
	}

	files, err := gen.Generate(outputDir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Path)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"package": cfg.Package,
			"output":  outputDir,
			"files":   names,
		},
		"Generated %d control files for %s in %s", len(files), cfg.Package, outputDir,
	)
}
