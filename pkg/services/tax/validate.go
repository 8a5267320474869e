package tax

import (
	"fmt"

	"github.com/sandrolex/rsu/pkg/models/domain"
)

// ValidationError reports a ScenarioInput field violating the calculator's
// preconditions. The calculator never clamps or guesses; a bad field is
// always surfaced to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func validate(in domain.ScenarioInput) error {
	if !in.Regime.Valid() {
		return &ValidationError{Field: "regime", Reason: fmt.Sprintf("unknown value %q", string(in.Regime))}
	}
	if in.Shares < 0 {
		return &ValidationError{Field: "shares", Reason: "must not be negative"}
	}
	if in.VestingPriceUSD < 0 {
		return &ValidationError{Field: "vesting_price_usd", Reason: "must not be negative"}
	}
	if in.SellPriceUSD < 0 {
		return &ValidationError{Field: "sell_price_usd", Reason: "must not be negative"}
	}
	if in.USDToEUR < 0 {
		return &ValidationError{Field: "usd_to_eur", Reason: "must not be negative"}
	}
	if in.VestingDate.IsZero() {
		return &ValidationError{Field: "vesting_date", Reason: "is required"}
	}
	if in.SellDate.IsZero() {
		return &ValidationError{Field: "sell_date", Reason: "is required"}
	}
	if in.SellDate.Before(in.VestingDate) {
		return &ValidationError{Field: "sell_date", Reason: "must not precede vesting_date"}
	}
	if in.IncomeTaxRate < 0 || in.IncomeTaxRate > 1 {
		return &ValidationError{Field: "income_tax_rate", Reason: "must be within [0,1]"}
	}
	if in.SocialSecurityRate != nil && (*in.SocialSecurityRate < 0 || *in.SocialSecurityRate > 1) {
		return &ValidationError{Field: "social_security_rate", Reason: "must be within [0,1]"}
	}
	if in.UseProgressiveTax && in.AnnualIncome < 0 {
		return &ValidationError{Field: "annual_income", Reason: "must not be negative"}
	}
	return nil
}
