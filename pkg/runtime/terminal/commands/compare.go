package commands

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/runtime/terminal/export"
	"github.com/sandrolex/rsu/pkg/services/config"
	"github.com/sandrolex/rsu/pkg/services/scenario"
)

// NewCompareCmd creates the command that runs the same sale under two
// regimes and reports which one leaves more in pocket.
func NewCompareCmd(estimator Estimator, registry config.Registry, reporter *export.Reporter, out io.Writer) *cobra.Command {
	flags := &scenarioFlags{}
	var regimeB string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the same RSU sale under two tax regimes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.applyProfile(cmd, registry); err != nil {
				return err
			}

			reqA, err := flags.buildRequest()
			if err != nil {
				return err
			}

			other, err := domain.ParseRegime(regimeB)
			if err != nil {
				return err
			}

			inputA, err := estimator.Resolve(cmd.Context(), reqA)
			if err != nil {
				return err
			}
			inputB := inputA
			inputB.Regime = other

			cmp, err := estimator.Compare(cmd.Context(),
				scenario.Request{Input: inputA},
				scenario.Request{Input: inputB},
			)
			if err != nil {
				return err
			}

			if err := reporter.Handle(scenario.BuildReport(inputA, cmp.A)); err != nil {
				return err
			}
			if err := reporter.Handle(scenario.BuildReport(inputB, cmp.B)); err != nil {
				return err
			}

			switch cmp.Better {
			case "a":
				fmt.Fprintf(out, "\n%s nets EUR %.2f more than %s\n",
					cmp.A.Regime.Description(), math.Abs(cmp.NetDifference), cmp.B.Regime.Description())
			case "b":
				fmt.Fprintf(out, "\n%s nets EUR %.2f more than %s\n",
					cmp.B.Regime.Description(), math.Abs(cmp.NetDifference), cmp.A.Regime.Description())
			default:
				fmt.Fprintf(out, "\nBoth regimes net the same amount\n")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&regimeB, "against", string(domain.RegimeUnrestricted),
		"Second regime to compare against")
	return cmd
}
