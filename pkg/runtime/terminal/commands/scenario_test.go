package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/services/config"
)

func newTestCmd(flags *scenarioFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	return cmd
}

func TestBuildRequest(t *testing.T) {
	t.Run("full scenario", func(t *testing.T) {
		flags := &scenarioFlags{
			ticker:             "AAPL",
			regime:             "macron_i",
			shares:             100,
			vestingPrice:       50,
			sellPrice:          80,
			usdToEUR:           0.9,
			vestingDate:        "2020-01-15",
			sellDate:           "2025-01-15",
			incomeTaxRate:      0.30,
			socialSecurityRate: -1,
		}

		req, err := flags.buildRequest()
		require.NoError(t, err)

		assert.Equal(t, "AAPL", req.Ticker)
		assert.Equal(t, domain.RegimeMacronI, req.Input.Regime)
		assert.Equal(t, 100.0, req.Input.Shares)
		assert.Equal(t, "2020-01-15", req.Input.VestingDate.Format("2006-01-02"))
		assert.Nil(t, req.Input.SocialSecurityRate)
	})

	t.Run("social security override", func(t *testing.T) {
		flags := &scenarioFlags{
			regime:             "macron_iii",
			vestingDate:        "2024-01-15",
			sellDate:           "2025-01-15",
			socialSecurityRate: 0.05,
		}

		req, err := flags.buildRequest()
		require.NoError(t, err)
		require.NotNil(t, req.Input.SocialSecurityRate)
		assert.Equal(t, 0.05, *req.Input.SocialSecurityRate)
	})

	t.Run("sell date defaults to today", func(t *testing.T) {
		flags := &scenarioFlags{
			regime:             "unrestricted",
			vestingDate:        "2024-01-15",
			socialSecurityRate: -1,
		}

		req, err := flags.buildRequest()
		require.NoError(t, err)
		assert.False(t, req.Input.SellDate.IsZero())
	})

	t.Run("unknown regime", func(t *testing.T) {
		flags := &scenarioFlags{regime: "macron_ii", vestingDate: "2024-01-15"}
		_, err := flags.buildRequest()
		assert.ErrorContains(t, err, "regime")
	})

	t.Run("malformed vesting date", func(t *testing.T) {
		flags := &scenarioFlags{regime: "macron_iii", vestingDate: "15/01/2024"}
		_, err := flags.buildRequest()
		assert.ErrorContains(t, err, "vesting-date")
	})
}

func TestApplyProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".rsucfg")
	content := `[acme]
ticker = ACME
regime = macron_i
income_tax_rate = 0.41
progressive = true
annual_income = 90000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := config.NewRegistry(path)
	require.NoError(t, err)

	t.Run("profile fills unset flags", func(t *testing.T) {
		flags := &scenarioFlags{profile: "acme"}
		cmd := newTestCmd(flags)
		flags.profile = "acme"

		require.NoError(t, flags.applyProfile(cmd, registry))

		assert.Equal(t, "ACME", flags.ticker)
		assert.Equal(t, string(domain.RegimeMacronI), flags.regime)
		assert.Equal(t, 0.41, flags.incomeTaxRate)
		assert.True(t, flags.progressive)
		assert.Equal(t, 90000.0, flags.annualIncome)
	})

	t.Run("explicit flags beat the profile", func(t *testing.T) {
		flags := &scenarioFlags{}
		cmd := newTestCmd(flags)
		flags.profile = "acme"
		require.NoError(t, cmd.Flags().Set("regime", "unrestricted"))
		require.NoError(t, cmd.Flags().Set("ticker", "OTHR"))

		require.NoError(t, flags.applyProfile(cmd, registry))

		assert.Equal(t, "unrestricted", flags.regime)
		assert.Equal(t, "OTHR", flags.ticker)
		assert.Equal(t, 0.41, flags.incomeTaxRate)
	})

	t.Run("missing profile errors", func(t *testing.T) {
		flags := &scenarioFlags{}
		cmd := newTestCmd(flags)
		flags.profile = "nope"

		assert.Error(t, flags.applyProfile(cmd, registry))
	})

	t.Run("no profile is a no-op", func(t *testing.T) {
		flags := &scenarioFlags{ticker: "AAPL"}
		cmd := newTestCmd(flags)

		require.NoError(t, flags.applyProfile(cmd, registry))
		assert.Equal(t, "AAPL", flags.ticker)
	})
}
