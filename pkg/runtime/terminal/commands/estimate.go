package commands

import (
	"github.com/spf13/cobra"

	"github.com/sandrolex/rsu/pkg/runtime/terminal/export"
	"github.com/sandrolex/rsu/pkg/services/config"
	"github.com/sandrolex/rsu/pkg/services/scenario"
)

// NewEstimateCmd creates the command that calculates one sell scenario.
func NewEstimateCmd(estimator Estimator, registry config.Registry, reporter *export.Reporter) *cobra.Command {
	flags := &scenarioFlags{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate taxes and net proceeds for one RSU sell scenario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.applyProfile(cmd, registry); err != nil {
				return err
			}

			req, err := flags.buildRequest()
			if err != nil {
				return err
			}

			input, err := estimator.Resolve(cmd.Context(), req)
			if err != nil {
				return err
			}

			result, err := estimator.Estimate(cmd.Context(), scenario.Request{Input: input})
			if err != nil {
				return err
			}

			return reporter.Handle(scenario.BuildReport(input, result))
		},
	}

	flags.register(cmd)
	return cmd
}
