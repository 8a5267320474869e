package domain

import "time"

// ScenarioInput carries everything needed to compute the tax consequences of
// selling a vested RSU tranche. Prices and the FX rate are already resolved
// to plain numbers by the time the calculator sees this value.
type ScenarioInput struct {
	Regime          TaxRegime
	Shares          float64
	VestingPriceUSD float64
	SellPriceUSD    float64
	USDToEUR        float64
	VestingDate     time.Time
	SellDate        time.Time

	// IncomeTaxRate is the flat rate applied to the relieved acquisition
	// gain and to any positive capital gain (PFU).
	IncomeTaxRate float64
	// SocialSecurityRate overrides the regime-derived rate when set.
	SocialSecurityRate *float64

	// UseProgressiveTax switches the acquisition gain from the flat rate to
	// the progressive income tax scale, stacked on top of AnnualIncome.
	// Capital gain stays on the flat PFU rate either way.
	UseProgressiveTax bool
	AnnualIncome      float64
}

// TaxResult itemizes every intermediate of a scenario calculation. All
// monetary amounts are in EUR.
type TaxResult struct {
	Regime TaxRegime

	YearsHeld       float64
	HasTaperRelief  bool
	TaperReliefRate float64
	RegimeNote      string

	VestingPriceEUR float64
	SellPriceEUR    float64
	GrossProceeds   float64

	AcquisitionGain            float64
	AcquisitionGainAfterRelief float64
	CapitalGain                float64
	TributableGain             float64

	SocialSecurityRate    float64
	SocialSecurityTax     float64
	AcquisitionTax        float64
	CapitalGainTax        float64
	SalarialeContribution float64
	TotalTaxes            float64

	NetProceeds float64
	// EffectiveTaxRate is TotalTaxes / GrossProceeds, 0 when there are no
	// proceeds.
	EffectiveTaxRate float64
}

// ScenarioComparison holds two calculated scenarios side by side.
// Differences are B relative to A.
type ScenarioComparison struct {
	A *TaxResult
	B *TaxResult

	NetDifference float64
	TaxDifference float64
	// Better is "a", "b" or "tie", judged on net proceeds.
	Better string
}
