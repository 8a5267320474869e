package tax

import "math"

// French income tax scale for 2025 revenue. Each bracket taxes the slice of
// income between the previous bound and UpTo at Rate.
type bracket struct {
	UpTo float64
	Rate float64
}

var brackets2025 = []bracket{
	{UpTo: 11_497, Rate: 0},
	{UpTo: 29_315, Rate: 0.11},
	{UpTo: 83_823, Rate: 0.30},
	{UpTo: 180_294, Rate: 0.41},
	{UpTo: math.Inf(1), Rate: 0.45},
}

// MarginalRate returns the top bracket rate applying to the given taxable
// income.
func MarginalRate(income float64) float64 {
	rate := 0.0
	lower := 0.0
	for _, b := range brackets2025 {
		if income <= lower {
			break
		}
		rate = b.Rate
		lower = b.UpTo
	}
	return rate
}

// ProgressiveTax computes income tax across the 2025 brackets.
func ProgressiveTax(income float64) float64 {
	if income <= 0 {
		return 0
	}
	tax := 0.0
	lower := 0.0
	for _, b := range brackets2025 {
		if income <= lower {
			break
		}
		upper := math.Min(income, b.UpTo)
		tax += (upper - lower) * b.Rate
		lower = b.UpTo
	}
	return tax
}

// TaxOnAdditionalIncome returns the extra income tax due when additional is
// stacked on top of an existing taxable income. This is the progressive
// alternative to taxing the addition at a flat marginal rate.
func TaxOnAdditionalIncome(base, additional float64) float64 {
	if additional <= 0 {
		return 0
	}
	if base < 0 {
		base = 0
	}
	return ProgressiveTax(base+additional) - ProgressiveTax(base)
}
