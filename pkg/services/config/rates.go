package config

import (
	"fmt"

	"github.com/sandrolex/rsu/pkg/services/tax"
	"github.com/spf13/viper"
)

// Rates holds the externally tunable tax parameters. Regime-structural
// constants (thresholds, relief tiers, social rates) are fixed business
// rules and deliberately not configurable here.
type Rates struct {
	IncomeTaxRate      float64  `mapstructure:"income_tax_rate"`
	SocialSecurityRate *float64 `mapstructure:"social_security_rate"`
}

// LoadRates reads the optional rates config file. An empty path yields the
// defaults.
func LoadRates(path string) (*Rates, error) {
	v := viper.New()
	v.SetDefault("income_tax_rate", tax.DefaultIncomeTaxRate)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read rates config: %w", err)
		}
	}

	var rates Rates
	if err := v.Unmarshal(&rates); err != nil {
		return nil, fmt.Errorf("failed to parse rates config: %w", err)
	}

	if rates.IncomeTaxRate < 0 || rates.IncomeTaxRate > 1 {
		return nil, fmt.Errorf("income_tax_rate %v is outside [0,1]", rates.IncomeTaxRate)
	}
	if rates.SocialSecurityRate != nil && (*rates.SocialSecurityRate < 0 || *rates.SocialSecurityRate > 1) {
		return nil, fmt.Errorf("social_security_rate %v is outside [0,1]", *rates.SocialSecurityRate)
	}
	return &rates, nil
}
