package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/azmodels/internal/generator"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		outputDir   string
		packageName string
	)

	cmd := &cobra.Command{
		Use:   "generate <catalog.yaml>",
		Short: "Generate variant and enum code from a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := generator.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			dir := outputDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}

			written, err := generator.NewVariantGenerator(packageName).WriteFiles(cat, dir)
			if err != nil {
				return err
			}
			for _, path := range written {
				a.logger.Info("generated", zap.String("path", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to the catalog's directory)")
	cmd.Flags().StringVar(&packageName, "package", "", "Package name override (defaults to the catalog's package)")
	return cmd
}
