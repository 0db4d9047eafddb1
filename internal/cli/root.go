// Package cli provides the azmodels command-line interface.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/azmodels/internal/logging"
)

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	config Config
	logger *zap.Logger
}

// NewRootCommand returns the azmodels command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	a := &app{config: DefaultConfig(), logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:           "azmodels",
		Short:         "Inspect and check the Azure model families",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfigFile(&a.config, cmd.Flags()); err != nil {
				return err
			}
			logger, err := a.config.newLogger()
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigPath, "config", a.config.ConfigPath, "Path to .azmodels.yml config file")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&a.config.LogFormat, "log-format", a.config.LogFormat, "Log format: console or json")
	flags.StringVar(&a.config.FixturesDir, "fixtures", a.config.FixturesDir, "Directory searched for relative fixture paths")

	rootCmd.AddCommand(
		newFamiliesCommand(a),
		newDecodeCommand(a),
		newRoundTripCommand(a),
		newPagesCommand(a),
		newSchemaCommand(a),
		newGenerateCommand(a),
	)
	return rootCmd
}
