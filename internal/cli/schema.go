package cli

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/azmodels/internal/registry"
	"github.com/example/azmodels/internal/schema"
)

// ModulePath is the import path of this module, the default base for
// --source.
const ModulePath = "github.com/example/azmodels"

func newSchemaCommand(a *app) *cobra.Command {
	var source, module string

	cmd := &cobra.Command{
		Use:   "schema [name]...",
		Short: "Print JSON Schemas for registered entries",
		Long: `Print JSON Schemas for registered entries.

Without names every entry is rendered. With --output each schema is written
to <output>/<name>.json instead of standard output. With --source the doc
comments of the Go packages under that directory become descriptions; the
directory is given relative to the root of --module.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = registry.Names()
			}

			gen := schema.NewGenerator()
			if source != "" {
				if err := gen.AddGoComments(module, source); err != nil {
					return err
				}
			}

			if a.config.SchemaOutput != "" {
				if err := os.MkdirAll(a.config.SchemaOutput, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}

			for _, name := range names {
				e, err := lookup(name)
				if err != nil {
					return err
				}
				s, err := gen.For(e)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return fmt.Errorf("%s: marshal schema: %w", name, err)
				}
				data = append(data, '\n')

				if a.config.SchemaOutput == "" {
					if _, err := cmd.OutOrStdout().Write(data); err != nil {
						return err
					}
					continue
				}
				path := filepath.Join(a.config.SchemaOutput, name+".json")
				if err := os.WriteFile(path, data, 0o600); err != nil {
					return fmt.Errorf("write schema: %w", err)
				}
				a.logger.Info("wrote schema", zap.String("entry", name), zap.String("path", path))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Directory containing Go source code for descriptions, e.g. pkg/models")
	cmd.Flags().StringVar(&module, "module", ModulePath, "Import path of the module --source is relative to")
	cmd.Flags().StringVarP(&a.config.SchemaOutput, "output", "o", a.config.SchemaOutput, "Directory to write <name>.json files into")
	return cmd
}
