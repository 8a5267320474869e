package tax

// Structural constants of the French RSU regimes. These are statutory rules,
// not runtime configuration.
const (
	// MacronIIIThreshold is the acquisition gain (EUR) above which Macron III
	// gains lose the automatic abatement and are treated as salary.
	MacronIIIThreshold = 300_000.0

	// PatrimonySocialRate is the 17.2% social security rate on patrimony
	// income.
	PatrimonySocialRate = 0.172
	// ActivitySocialRate is the 9.7% rate on activity income
	// (9.2% CSG + 0.5% CRDS).
	ActivitySocialRate = 0.097

	// SalarialeRate is the 10% employee contribution due under Macron III
	// when the acquisition gain exceeds the threshold.
	SalarialeRate = 0.10

	// MacronIMinYears and MacronIFullYears bound the Macron I relief tiers.
	MacronIMinYears  = 2.0
	MacronIFullYears = 8.0

	// MacronIPartialRelief and MacronIFullRelief are the Macron I abatement
	// tiers; MacronIIIRelief is the automatic Macron III abatement.
	MacronIPartialRelief = 0.50
	MacronIFullRelief    = 0.65
	MacronIIIRelief      = 0.50

	// DefaultIncomeTaxRate is the flat PFU-style rate used when the caller
	// supplies none.
	DefaultIncomeTaxRate = 0.30
)
