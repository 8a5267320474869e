package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandrolex/rsu/pkg/runtime/terminal/commands"
	"github.com/sandrolex/rsu/pkg/runtime/terminal/export"
	"github.com/sandrolex/rsu/pkg/services/config"
)

// CLI represents the command-line interface
type CLI struct {
	estimator commands.Estimator
	registry  config.Registry
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Estimator commands.Estimator
	Registry  config.Registry
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		estimator: opts.Estimator,
		registry:  opts.Registry,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsu",
		Short: "French RSU sell scenario calculator",
	}

	cmd.AddCommand(commands.NewEstimateCmd(cli.estimator, cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewCompareCmd(cli.estimator, cli.registry, cli.reporter, out))

	return cmd
}
