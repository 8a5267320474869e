package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/services/config"
	"github.com/sandrolex/rsu/pkg/services/scenario"
	"github.com/sandrolex/rsu/pkg/services/tax"
)

const dateFormat = "2006-01-02"

// Estimator runs scenario calculations for the CLI commands. Resolve is
// exposed separately so commands can report the market inputs they used.
type Estimator interface {
	Resolve(ctx context.Context, req scenario.Request) (domain.ScenarioInput, error)
	Estimate(ctx context.Context, req scenario.Request) (*domain.TaxResult, error)
	Compare(ctx context.Context, a, b scenario.Request) (*domain.ScenarioComparison, error)
}

// scenarioFlags collects the shared scenario inputs. Zero prices together
// with a ticker mean "resolve from market data".
type scenarioFlags struct {
	profile            string
	ticker             string
	regime             string
	shares             float64
	vestingPrice       float64
	sellPrice          float64
	usdToEUR           float64
	vestingDate        string
	sellDate           string
	incomeTaxRate      float64
	socialSecurityRate float64
	progressive        bool
	annualIncome       float64
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "Profile name from the config file")
	cmd.Flags().StringVarP(&f.ticker, "ticker", "t", "", "Ticker used to resolve missing prices")
	cmd.Flags().StringVarP(&f.regime, "regime", "r", string(domain.RegimeMacronIII), "Tax regime: macron_i, macron_iii or unrestricted")
	cmd.Flags().Float64VarP(&f.shares, "shares", "n", 0, "Number of shares sold")
	cmd.Flags().Float64Var(&f.vestingPrice, "vesting-price", 0, "Share price at vesting in USD (0 resolves from market data)")
	cmd.Flags().Float64Var(&f.sellPrice, "sell-price", 0, "Share price at sale in USD (0 resolves from market data)")
	cmd.Flags().Float64Var(&f.usdToEUR, "fx", 0, "USD to EUR rate (0 resolves the current rate)")
	cmd.Flags().StringVar(&f.vestingDate, "vesting-date", "", "Vesting date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.sellDate, "sell-date", "", "Sell date, YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&f.incomeTaxRate, "income-tax-rate", tax.DefaultIncomeTaxRate, "Flat income tax rate on the acquisition gain")
	cmd.Flags().Float64Var(&f.socialSecurityRate, "social-security-rate", -1, "Override for the social security rate (-1 uses the regime rate)")
	cmd.Flags().BoolVar(&f.progressive, "progressive", false, "Tax the acquisition gain with the progressive income scale")
	cmd.Flags().Float64Var(&f.annualIncome, "annual-income", 0, "Taxable annual income, used with --progressive")
}

// applyProfile fills flags the user did not set from the named profile.
func (f *scenarioFlags) applyProfile(cmd *cobra.Command, registry config.Registry) error {
	if f.profile == "" || registry == nil {
		return nil
	}

	profile, err := registry.GetProfile(f.profile)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("ticker") && profile.Ticker != "" {
		f.ticker = profile.Ticker
	}
	if !cmd.Flags().Changed("regime") {
		f.regime = string(profile.Regime)
	}
	if !cmd.Flags().Changed("income-tax-rate") {
		f.incomeTaxRate = profile.IncomeTaxRate
	}
	if !cmd.Flags().Changed("progressive") {
		f.progressive = profile.UseProgressive
	}
	if !cmd.Flags().Changed("annual-income") {
		f.annualIncome = profile.AnnualIncome
	}
	return nil
}

func (f *scenarioFlags) buildRequest() (scenario.Request, error) {
	regime, err := domain.ParseRegime(f.regime)
	if err != nil {
		return scenario.Request{}, err
	}

	vestingDate, err := time.Parse(dateFormat, f.vestingDate)
	if err != nil {
		return scenario.Request{}, fmt.Errorf("invalid --vesting-date, expected YYYY-MM-DD")
	}

	sellDate := time.Now().UTC().Truncate(24 * time.Hour)
	if f.sellDate != "" {
		sellDate, err = time.Parse(dateFormat, f.sellDate)
		if err != nil {
			return scenario.Request{}, fmt.Errorf("invalid --sell-date, expected YYYY-MM-DD")
		}
	}

	var ssOverride *float64
	if f.socialSecurityRate >= 0 {
		ssOverride = &f.socialSecurityRate
	}

	return scenario.Request{
		Ticker: f.ticker,
		Input: domain.ScenarioInput{
			Regime:             regime,
			Shares:             f.shares,
			VestingPriceUSD:    f.vestingPrice,
			SellPriceUSD:       f.sellPrice,
			USDToEUR:           f.usdToEUR,
			VestingDate:        vestingDate,
			SellDate:           sellDate,
			IncomeTaxRate:      f.incomeTaxRate,
			SocialSecurityRate: ssOverride,
			UseProgressiveTax:  f.progressive,
			AnnualIncome:       f.annualIncome,
		},
	}, nil
}
