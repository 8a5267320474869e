// Package tax implements the French RSU tax calculation. The calculation is
// a pure function of its input: no I/O, no shared state, safe for concurrent
// use. All monetary intermediates are exposed on the result so callers can
// explain every number.
package tax

import (
	"time"

	"github.com/sandrolex/rsu/pkg/models/domain"
)

// Calculate produces the full tax breakdown for one sell scenario. It
// returns a *ValidationError when a precondition is violated; there is no
// partial result.
func Calculate(in domain.ScenarioInput) (*domain.TaxResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	yearsHeld := YearsHeld(in.VestingDate, in.SellDate)

	vestingEUR := in.VestingPriceUSD * in.USDToEUR
	sellEUR := in.SellPriceUSD * in.USDToEUR

	grossProceeds := in.Shares * sellEUR
	acquisitionGain := in.Shares * vestingEUR
	capitalGain := grossProceeds - acquisitionGain

	relief := reliefFor(in.Regime, yearsHeld, acquisitionGain)
	relievedGain := acquisitionGain * (1 - relief.Rate)
	tributableGain := relievedGain + capitalGain

	ssRate := socialSecurityRate(in, acquisitionGain)
	ssTax := tributableGain * ssRate

	var acquisitionTax float64
	if in.UseProgressiveTax {
		acquisitionTax = TaxOnAdditionalIncome(in.AnnualIncome, relievedGain)
	} else {
		acquisitionTax = relievedGain * in.IncomeTaxRate
	}

	// Losses never generate a negative tax.
	var capitalGainTax float64
	if capitalGain > 0 {
		capitalGainTax = capitalGain * in.IncomeTaxRate
	}

	// The salariale contribution applies to the pre-relief gain.
	var salariale float64
	if in.Regime == domain.RegimeMacronIII && acquisitionGain > MacronIIIThreshold {
		salariale = acquisitionGain * SalarialeRate
	}

	totalTaxes := ssTax + acquisitionTax + capitalGainTax + salariale
	netProceeds := grossProceeds - totalTaxes

	var effectiveRate float64
	if grossProceeds > 0 {
		effectiveRate = totalTaxes / grossProceeds
	}

	return &domain.TaxResult{
		Regime: in.Regime,

		YearsHeld:       yearsHeld,
		HasTaperRelief:  relief.Applies,
		TaperReliefRate: relief.Rate,
		RegimeNote:      relief.Note,

		VestingPriceEUR: vestingEUR,
		SellPriceEUR:    sellEUR,
		GrossProceeds:   grossProceeds,

		AcquisitionGain:            acquisitionGain,
		AcquisitionGainAfterRelief: relievedGain,
		CapitalGain:                capitalGain,
		TributableGain:             tributableGain,

		SocialSecurityRate:    ssRate,
		SocialSecurityTax:     ssTax,
		AcquisitionTax:        acquisitionTax,
		CapitalGainTax:        capitalGainTax,
		SalarialeContribution: salariale,
		TotalTaxes:            totalTaxes,

		NetProceeds:      netProceeds,
		EffectiveTaxRate: effectiveRate,
	}, nil
}

// YearsHeld returns the holding period as fractional years using calendar
// components: whole years, plus months/12, plus leftover days/365. An
// anniversary date is exactly a whole number of years, which keeps the
// Macron I 2-year and 8-year boundaries tied to dates rather than to day
// counts.
func YearsHeld(vesting, sell time.Time) float64 {
	y1, m1, d1 := vesting.Date()
	y2, m2, d2 := sell.Date()

	years := y2 - y1
	months := int(m2) - int(m1)
	days := d2 - d1

	if days < 0 {
		months--
		// borrow the length of the month preceding the sell date
		prevMonthEnd := time.Date(y2, m2, 0, 0, 0, 0, 0, time.UTC)
		days += prevMonthEnd.Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return float64(years) + float64(months)/12 + float64(days)/365
}
