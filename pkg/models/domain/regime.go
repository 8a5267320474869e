package domain

import "fmt"

// TaxRegime identifies the French taxation regime an RSU grant falls under,
// determined by when the plan was authorized.
type TaxRegime string

const (
	// RegimeMacronI covers plans authorized between August 7, 2015 and
	// December 29, 2016. Taper relief depends on the holding period.
	RegimeMacronI TaxRegime = "macron_i"
	// RegimeMacronIII covers plans authorized from January 1, 2018 onward.
	// Taper relief depends on the size of the acquisition gain.
	RegimeMacronIII TaxRegime = "macron_iii"
	// RegimeUnrestricted covers non-qualified plans, taxed as salary with
	// no relief.
	RegimeUnrestricted TaxRegime = "unrestricted"
)

func (r TaxRegime) Valid() bool {
	switch r {
	case RegimeMacronI, RegimeMacronIII, RegimeUnrestricted:
		return true
	}
	return false
}

// ParseRegime converts a wire/flag value into a TaxRegime.
func ParseRegime(s string) (TaxRegime, error) {
	r := TaxRegime(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown tax regime %q", s)
	}
	return r, nil
}

// Description returns the human-readable name used in reports.
func (r TaxRegime) Description() string {
	switch r {
	case RegimeMacronI:
		return "Macron I (Aug 2015 - Dec 2016)"
	case RegimeMacronIII:
		return "Macron III (Jan 2018 - present)"
	case RegimeUnrestricted:
		return "Unrestricted (Non-qualified)"
	}
	return string(r)
}
