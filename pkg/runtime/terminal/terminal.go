package terminal

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal/commands"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	configPath string
	logger     zerolog.Logger
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Logger zerolog.Logger
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		logger:   opts.Logger,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workforce",
		Short: "Community pharmacy workforce projection toolkit",
	}

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "workforce.yaml", "Path to the settings file")

	deps := commands.Deps{
		Logger:     cli.logger,
		Reporter:   cli.reporter,
		ConfigPath: &cli.configPath,
	}

	cmd.AddCommand(commands.NewRatesCmd(deps))
	cmd.AddCommand(commands.NewProjectCmd(deps))
	cmd.AddCommand(commands.NewOpsCmd(deps))
	cmd.AddCommand(commands.NewGapCmd(deps))
	cmd.AddCommand(commands.NewPharmaciesCmd(deps))

	return cmd
}
